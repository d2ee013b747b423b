package feature

// Kind classifies how a clinical input is captured and validated.
type Kind string

const (
	KindContinuous Kind = "continuous"
	KindOrdinal    Kind = "ordinal"
	KindBinary     Kind = "binary"
)

// Count is the fixed width of every feature vector.
const Count = 10

// Field keys, in the canonical column order the models were trained on.
const (
	KeyPlateletsMin       = "platelets_min"
	KeyRiss               = "riss"
	KeySbpMin             = "sbp_min"
	KeyBunMax             = "bun_max"
	KeyTemperatureMax     = "temperature_max"
	KeyAdmissionAge       = "admission_age"
	KeyRenal              = "renal"
	KeyInvasiveLine1stDay = "invasive_line_1stday"
	KeyMechVent           = "mechvent"
	KeySofa1stDay         = "sofa_1stday"
)

// Field describes one clinical input.
type Field struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit,omitempty"`
	Kind    Kind    `json:"kind"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

var fields = []Field{
	{Key: KeyPlateletsMin, Label: "Platelet Count", Unit: "×10⁹/L", Kind: KindContinuous, Min: 0, Max: 1000, Step: 1, Default: 200},
	{Key: KeyRiss, Label: "RISS", Kind: KindOrdinal, Min: 0, Max: 75, Step: 1, Default: 25},
	{Key: KeySbpMin, Label: "Systolic BP", Unit: "mmHg", Kind: KindContinuous, Min: 50, Max: 200, Step: 1, Default: 110},
	{Key: KeyBunMax, Label: "BUN", Unit: "mg/dL", Kind: KindContinuous, Min: 0, Max: 200, Step: 1, Default: 20},
	{Key: KeyTemperatureMax, Label: "Temperature", Unit: "°C", Kind: KindContinuous, Min: 34.0, Max: 42.0, Step: 0.1, Default: 37.0},
	{Key: KeyAdmissionAge, Label: "Age", Unit: "years", Kind: KindContinuous, Min: 18, Max: 100, Step: 1, Default: 60},
	{Key: KeyRenal, Label: "Renal Score", Kind: KindOrdinal, Min: 0, Max: 4, Step: 1, Default: 0},
	{Key: KeyInvasiveLine1stDay, Label: "Invasive Line Use", Kind: KindBinary, Min: 0, Max: 1, Step: 1, Default: 0},
	{Key: KeyMechVent, Label: "Mechanical Ventilation", Kind: KindBinary, Min: 0, Max: 1, Step: 1, Default: 0},
	{Key: KeySofa1stDay, Label: "SOFA Score", Kind: KindOrdinal, Min: 0, Max: 24, Step: 1, Default: 6},
}

var fieldIndex = buildFieldIndex()

func buildFieldIndex() map[string]int {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Key] = i
	}
	return index
}

// Schema returns the ordered field descriptors.
func Schema() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Keys returns the canonical column order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

// Lookup returns the field descriptor for key.
func Lookup(key string) (Field, bool) {
	i, ok := fieldIndex[key]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}
