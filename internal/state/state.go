// Package state holds the per-timestep numeric state of a simulation run.
//
// Vectors is a plain data container: one value per species for every
// modifier, growth increment, stand metric, water term, canopy geometry term,
// δ13C term and bias-correction term, plus a few stand-level scalars. The
// physiology step mutates it in place each month. This package only
// guarantees that every vector has one entry per species and starts at zero.
//
// Vectors is generic over the floating-point precision F and over the
// integer type L used for categorical per-species fields (canopy layer).
package state

import (
	"time"

	"github.com/roach88/threepg/internal/arrays"
)

// Astronomy supplies the per-calendar-month tables a run needs from its site.
type Astronomy interface {
	// DayLength returns the mean day length in seconds for January..December.
	DayLength() [12]float64

	// SolarZenithAngle returns the adjusted solar zenith angle in degrees
	// for January..December.
	SolarZenithAngle() [12]float64
}

// Modifiers are the 0..1 growth modifiers.
type Modifiers[F arrays.Float] struct {
	Age         []F // f_age
	CAlpha      []F // f_calpha, CO2 effect on quantum efficiency
	CG          []F // f_cg, CO2 effect on canopy conductance
	Frost       []F // f_frost
	Nutrition   []F // f_nutr
	Physiology  []F // f_phys
	SoilWater   []F // f_sw
	Temperature []F // f_tmp
	TempGC      []F // f_tmp_gc, temperature effect on canopy conductance
	VPD         []F // f_vpd
}

// Mortality terms.
type Mortality[F arrays.Float] struct {
	Stress   []F // stems lost to stress this month
	Thinning []F // stems removed by management this month
	Self     []F // stems lost to self-thinning this month
}

// Growth holds production and its allocation.
type Growth[F arrays.Float] struct {
	AlphaC          []F // canopy quantum efficiency
	EpsilonGPP      []F
	EpsilonNPP      []F
	EpsilonBiomStem []F
	GPP             []F
	NPP             []F
	NPPFract        []F // NPP fraction of GPP
	FractRoot       []F // npp_fract_root
	FractStem       []F // npp_fract_stem
	FractFoliage    []F // npp_fract_foliage
	IncrFoliage     []F // biom_incr_foliage
	IncrRoot        []F // biom_incr_root
	IncrStem        []F // biom_incr_stem
	LossFoliage     []F // litterfall
	LossRoot        []F // root turnover
}

// Stand holds the per-species stand metrics.
type Stand[F arrays.Float] struct {
	Age           []F // years
	AgeM          []F // age used by modifiers, one month behind
	StemsN        []F // stems/ha
	StemsNHa      []F // stems/ha occupied by the species' canopy
	BiomStem      []F
	BiomFoliage   []F
	BiomRoot      []F
	BiomTree      []F // mean stem mass per tree, kg
	BiomTreeMax   []F // self-thinning limit per tree
	BasalArea     []F
	DBH           []F
	Height        []F
	LAI           []F
	SLA           []F
	FracBB        []F // branch and bark fraction
	WoodDensity   []F
	Volume        []F
	VolumeMAI     []F
	VolumeCum     []F
	VolumeChange  []F
	GammaF        []F // litterfall rate
	GammaN        []F // density-independent mortality rate
	Competition   []F // per-species competition index
	BiomFoliageDB []F // foliage at the start of the month
}

// Water holds per-species water terms.
type Water[F arrays.Float] struct {
	Transpiration    []F
	ConductCanopy    []F
	PrcpInterception []F
	WUE              []F // water use efficiency
	WUETransp        []F
}

// Canopy holds per-species canopy geometry. Layer is categorical.
type Canopy[F arrays.Float, L arrays.Index] struct {
	Layer         []L
	LAIAbove      []F
	LAISaTotal    []F
	LambdaV       []F
	LambdaH       []F
	CanopyVolFrac []F
	CanopyDepth   []F
	CanopyCover   []F
	CrownLength   []F
	CrownWidth    []F
	HeightRel     []F
	FI            []F // fraction of light intercepted
	APAR          []F
	VPDSp         []F // VPD adjusted for canopy position
	AeroResist    []F
	KL            []F // light extinction for the layer
}

// D13C holds δ13C terms.
type D13C[F arrays.Float] struct {
	CanopyConductance []F
	InterCi           []F
	D13CNewPS         []F
	D13CTissue        []F
}

// BiasCorrection holds the Weibull distribution parameters and relative
// biases used to correct mean-tree estimates.
type BiasCorrection[F arrays.Float] struct {
	DWeibullScale     []F
	DWeibullShape     []F
	DWeibullLocation  []F
	WsWeibullScale    []F
	WsWeibullShape    []F
	WsWeibullLocation []F
	CVdbh             []F
	CVws              []F
	DRelBiasPFS       []F
	DRelBiasHeight    []F
	DRelBiasBasArea   []F
	DRelBiasLCL       []F
	DRelBiasCrownDiam []F
	WsRelBias         []F
}

// Vectors is the full per-timestep state for n species.
type Vectors[F arrays.Float, L arrays.Index] struct {
	Modifiers Modifiers[F]
	Mortality Mortality[F]
	Growth    Growth[F]
	Stand     Stand[F]
	Water     Water[F]
	Canopy    Canopy[F, L]
	D13C      D13C[F]
	Bias      BiasCorrection[F]

	// TotalAvailableSoilWater is the stand's available soil water, mm.
	TotalAvailableSoilWater F
	// TotalCompetition is the stand-level competition index.
	TotalCompetition F

	n                int
	dayLength        [12]F
	solarZenithAngle [12]F
}

// New allocates zeroed vectors for nSpecies species and copies the site's
// monthly astronomy tables.
func New[F arrays.Float, L arrays.Index](nSpecies int, site Astronomy) *Vectors[F, L] {
	v := &Vectors[F, L]{n: nSpecies}
	for _, col := range v.floatColumns() {
		*col = make([]F, nSpecies)
	}
	v.Canopy.Layer = make([]L, nSpecies)

	dl, sz := site.DayLength(), site.SolarZenithAngle()
	for m := 0; m < 12; m++ {
		v.dayLength[m] = F(dl[m])
		v.solarZenithAngle[m] = F(sz[m])
	}
	return v
}

// Len returns the number of species the vectors were sized for.
func (v *Vectors[F, L]) Len() int {
	return v.n
}

// DayLength returns the mean day length in seconds for the month of t.
func (v *Vectors[F, L]) DayLength(t time.Time) F {
	return v.dayLength[t.Month()-1]
}

// SolarZenithAngle returns the adjusted solar zenith angle for the month of t.
func (v *Vectors[F, L]) SolarZenithAngle(t time.Time) F {
	return v.solarZenithAngle[t.Month()-1]
}

// Reset zeroes every per-species vector and stand scalar in place so the
// allocation can be reused for another run with the same species count.
// The astronomy tables are kept.
func (v *Vectors[F, L]) Reset() {
	for _, col := range v.floatColumns() {
		clear(*col)
	}
	clear(v.Canopy.Layer)
	v.TotalAvailableSoilWater = 0
	v.TotalCompetition = 0
}

// floatColumns lists every per-species float vector.
func (v *Vectors[F, L]) floatColumns() []*[]F {
	m, mo, g, s, w, c, d, b := &v.Modifiers, &v.Mortality, &v.Growth, &v.Stand, &v.Water, &v.Canopy, &v.D13C, &v.Bias
	return []*[]F{
		&m.Age, &m.CAlpha, &m.CG, &m.Frost, &m.Nutrition, &m.Physiology,
		&m.SoilWater, &m.Temperature, &m.TempGC, &m.VPD,

		&mo.Stress, &mo.Thinning, &mo.Self,

		&g.AlphaC, &g.EpsilonGPP, &g.EpsilonNPP, &g.EpsilonBiomStem, &g.GPP,
		&g.NPP, &g.NPPFract, &g.FractRoot, &g.FractStem, &g.FractFoliage,
		&g.IncrFoliage, &g.IncrRoot, &g.IncrStem, &g.LossFoliage, &g.LossRoot,

		&s.Age, &s.AgeM, &s.StemsN, &s.StemsNHa, &s.BiomStem, &s.BiomFoliage,
		&s.BiomRoot, &s.BiomTree, &s.BiomTreeMax, &s.BasalArea, &s.DBH,
		&s.Height, &s.LAI, &s.SLA, &s.FracBB, &s.WoodDensity, &s.Volume,
		&s.VolumeMAI, &s.VolumeCum, &s.VolumeChange, &s.GammaF, &s.GammaN,
		&s.Competition, &s.BiomFoliageDB,

		&w.Transpiration, &w.ConductCanopy, &w.PrcpInterception, &w.WUE, &w.WUETransp,

		&c.LAIAbove, &c.LAISaTotal, &c.LambdaV, &c.LambdaH, &c.CanopyVolFrac,
		&c.CanopyDepth, &c.CanopyCover, &c.CrownLength, &c.CrownWidth,
		&c.HeightRel, &c.FI, &c.APAR, &c.VPDSp, &c.AeroResist, &c.KL,

		&d.CanopyConductance, &d.InterCi, &d.D13CNewPS, &d.D13CTissue,

		&b.DWeibullScale, &b.DWeibullShape, &b.DWeibullLocation,
		&b.WsWeibullScale, &b.WsWeibullShape, &b.WsWeibullLocation,
		&b.CVdbh, &b.CVws, &b.DRelBiasPFS, &b.DRelBiasHeight,
		&b.DRelBiasBasArea, &b.DRelBiasLCL, &b.DRelBiasCrownDiam, &b.WsRelBias,
	}
}
