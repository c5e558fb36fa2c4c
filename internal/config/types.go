package config

// File is the on-disk form of a run file.
type File struct {
	Name    string        `yaml:"name,omitempty" json:"name,omitempty"`
	From    string        `yaml:"from" json:"from"`
	To      string        `yaml:"to" json:"to"`
	Site    SiteFile      `yaml:"site" json:"site"`
	Species []SpeciesFile `yaml:"species" json:"species,omitempty"`
	Climate *ClimateFile  `yaml:"climate,omitempty" json:"climate,omitempty"`
}

// SiteFile describes the stand location.
type SiteFile struct {
	Latitude  float64        `yaml:"latitude" json:"latitude"`
	Altitude  float64        `yaml:"altitude,omitempty" json:"altitude,omitempty"`
	SoilClass int32          `yaml:"soil_class,omitempty" json:"soil_class,omitempty"`
	ASW       *SoilWaterFile `yaml:"asw,omitempty" json:"asw,omitempty"`
}

// SoilWaterFile bounds available soil water, mm.
type SoilWaterFile struct {
	Initial float64 `yaml:"initial" json:"initial"`
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
}

// SpeciesFile is one species' initial state and management.
type SpeciesFile struct {
	Name       string         `yaml:"name" json:"name"`
	Planted    string         `yaml:"planted" json:"planted"`
	Fertility  float64        `yaml:"fertility" json:"fertility"`
	Stems      float64        `yaml:"stems" json:"stems"`
	Biomass    BiomassFile    `yaml:"biomass" json:"biomass"`
	SoilClass  int32          `yaml:"soil_class,omitempty" json:"soil_class,omitempty"`
	Management []ThinningFile `yaml:"management,omitempty" json:"management,omitempty"`
}

// BiomassFile holds initial biomass pools, tDM/ha.
type BiomassFile struct {
	Stem    float64 `yaml:"stem" json:"stem"`
	Foliage float64 `yaml:"foliage" json:"foliage"`
	Root    float64 `yaml:"root" json:"root"`
}

// ThinningFile is one management event.
type ThinningFile struct {
	Age     float64 `yaml:"age" json:"age"`
	Stems   float64 `yaml:"stems" json:"stems"`
	Stem    float64 `yaml:"stem" json:"stem"`
	Root    float64 `yaml:"root" json:"root"`
	Foliage float64 `yaml:"foliage" json:"foliage"`
}

// ClimateFile is the monthly forcing series.
type ClimateFile struct {
	Start  string             `yaml:"start" json:"start"`
	Months []ClimateMonthFile `yaml:"months" json:"months,omitempty"`
}

// ClimateMonthFile is one month of forcing.
type ClimateMonthFile struct {
	TmpMin    float64 `yaml:"tmp_min" json:"tmp_min"`
	TmpMax    float64 `yaml:"tmp_max" json:"tmp_max"`
	TmpAve    float64 `yaml:"tmp_ave" json:"tmp_ave"`
	Prcp      float64 `yaml:"prcp" json:"prcp"`
	Srad      float64 `yaml:"srad" json:"srad"`
	FrostDays float64 `yaml:"frost_days" json:"frost_days"`
	CO2       float64 `yaml:"co2" json:"co2"`
	D13CAtm   float64 `yaml:"d13catm" json:"d13catm"`
	VPD       float64 `yaml:"vpd" json:"vpd"`
}
