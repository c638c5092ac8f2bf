package taxonomy

// Category is one of the closed taxonomy set a query can classify into.
type Category string

const (
	CategoryGeneralWellness Category = "general-wellness"
	CategorySleep           Category = "sleep"
	CategoryMood            Category = "mood"
	CategorySafety          Category = "safety"
	CategoryMedicationOrg   Category = "medication-organization"
	CategoryEmergency       Category = "emergency"
	CategoryDiagnosis       Category = "diagnosis-request"
	CategoryPrescription    Category = "prescription-request"
	CategoryOutOfScope      Category = "out-of-scope"
)

// Severity tiers a category's consequences when matched.
type Severity string

const (
	SeverityBenign    Severity = "benign"
	SeveritySensitive Severity = "sensitive"
	SeverityBlocking  Severity = "blocking"
)

// AllCategories is the full closed set. A Classification must carry a
// confidence for every entry.
var AllCategories = []Category{
	CategoryGeneralWellness,
	CategorySleep,
	CategoryMood,
	CategorySafety,
	CategoryMedicationOrg,
	CategoryEmergency,
	CategoryDiagnosis,
	CategoryPrescription,
	CategoryOutOfScope,
}

var severities = map[Category]Severity{
	CategoryGeneralWellness: SeverityBenign,
	CategorySleep:           SeverityBenign,
	CategoryMood:            SeverityBenign,
	CategorySafety:          SeveritySensitive,
	CategoryMedicationOrg:   SeveritySensitive,
	CategoryEmergency:       SeverityBlocking,
	CategoryDiagnosis:       SeverityBlocking,
	CategoryPrescription:    SeverityBlocking,
	CategoryOutOfScope:      SeverityBenign,
}

// Severity returns the category's severity tier.
func (c Category) Severity() Severity {
	if s, ok := severities[c]; ok {
		return s
	}
	return SeverityBenign
}

// Valid reports whether c belongs to the closed set.
func (c Category) Valid() bool {
	_, ok := severities[c]
	return ok
}

// Allowable reports whether the category may proceed to generation.
func (c Category) Allowable() bool {
	switch c {
	case CategoryGeneralWellness, CategorySleep, CategoryMood, CategorySafety, CategoryMedicationOrg:
		return true
	}
	return false
}
