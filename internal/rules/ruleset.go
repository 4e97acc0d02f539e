// Package rules defines the frontmatter rule tables and applies them to
// parsed records.
package rules

// RuleSet holds the complete rule tables applied to every document.
// A RuleSet is constructed once at startup and passed by value; nothing
// in this package mutates it after construction.
type RuleSet struct {
	Required       []string `yaml:"required" json:"required"`
	Forbidden      []string `yaml:"forbidden" json:"forbidden"`
	ListFields     []string `yaml:"list_fields" json:"list_fields"`
	Areas          []string `yaml:"areas" json:"areas"`
	Difficulties   []string `yaml:"difficulties" json:"difficulties"`
	TitleMin       int      `yaml:"title_min" json:"title_min"`
	TitleMax       int      `yaml:"title_max" json:"title_max"`
	DescriptionMin int      `yaml:"description_min" json:"description_min"`
	DescriptionMax int      `yaml:"description_max" json:"description_max"`
}

// Default returns the rule set enforced when no configuration overrides
// are present.
func Default() RuleSet {
	return RuleSet{
		Required: []string{
			"title",
			"description",
			"area",
			"difficulty",
			"object_types",
			"variable_types",
			"tags",
		},
		// Legacy metadata keys carried over from earlier tooling. The
		// singular object_type/variable_type entries also catch the
		// common typo for their plural required counterparts.
		Forbidden: []string{
			"author",
			"ms.date",
			"ms.topic",
			"ms.service",
			"ai_guidance",
			"copilot_behavior",
			"devops_integration",
			"last_modified",
			"skill_level",
			"object_type",
			"variable_type",
			"ai_tags",
		},
		ListFields: []string{"object_types", "variable_types", "tags"},
		Areas: []string{
			"api-integration",
			"appsource-compliance",
			"code-formatting",
			"copilot-prompting",
			"error-handling",
			"events-subscribers",
			"localization",
			"naming-conventions",
			"performance",
			"permissions",
			"reporting",
			"security",
			"testing",
			"upgrade-patterns",
			"workflow-patterns",
		},
		Difficulties:   []string{"beginner", "intermediate", "advanced", "expert"},
		TitleMin:       10,
		TitleMax:       100,
		DescriptionMin: 20,
		DescriptionMax: 200,
	}
}

// contains reports whether list holds the exact value.
func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
