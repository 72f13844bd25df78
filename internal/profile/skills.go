package profile

import (
	"cmp"
	"slices"
)

// OtherCategory collects stacks that carry no category.
const OtherCategory = "Other"

type skillMeta struct {
	title       LocalizedText
	description LocalizedText
}

// skillCategories is the canonical display order of known categories.
var skillCategories = []string{"Backend", "Data & AI", "DevOps", "Communication", OtherCategory}

var skillMetaTable = map[string]skillMeta{
	"Backend": {
		title: LocalizedText{EN: "Backend", RU: "Backend"},
		description: LocalizedText{
			EN: "Designing resilient APIs and services ready to scale.",
			RU: "Проектирование API и сервисов, устойчивых к росту нагрузки.",
		},
	},
	"Data & AI": {
		title: LocalizedText{EN: "Data & AI", RU: "Данные и AI"},
		description: LocalizedText{
			EN: "Implement ML/LLM agents, pipelines, and MLOps practices.",
			RU: "Внедряю ML/LLM-агентов, пайплайны и MLOps.",
		},
	},
	"DevOps": {
		title: LocalizedText{EN: "DevOps", RU: "DevOps"},
		description: LocalizedText{
			EN: "Ship CI/CD, monitoring, and infrastructure automation.",
			RU: "Настраиваю CI/CD, мониторинг и инфраструктуру.",
		},
	},
	"Communication": {
		title: LocalizedText{EN: "Communication", RU: "Коммуникации"},
		description: LocalizedText{
			EN: "Align teams and processes to deliver measurable outcomes.",
			RU: "Организую процессы и помогаю командам доставлять результаты.",
		},
	},
	OtherCategory: {
		title:       LocalizedText{EN: "Other", RU: "Другое"},
		description: LocalizedText{EN: "Additional tools and technologies.", RU: "Дополнительные инструменты и технологии."},
	},
}

// BuildSkills groups stacks by category. Items are sorted by name; groups
// follow the canonical category order, and unknown categories come after all
// known ones in the order they were first seen.
func BuildSkills(stacks []APIStack) []SkillGroup {
	var order []string
	grouped := make(map[string][]string)
	for _, st := range stacks {
		category := derefString(st.Category)
		if category == "" {
			category = OtherCategory
		}
		if _, seen := grouped[category]; !seen {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], st.Name)
	}

	groups := make([]SkillGroup, 0, len(order))
	for _, category := range order {
		meta, ok := skillMetaTable[category]
		if !ok {
			meta = skillMeta{title: LocalizedText{EN: category, RU: category}}
		}
		items := grouped[category]
		slices.Sort(items)
		groups = append(groups, SkillGroup{
			Category:    category,
			Title:       meta.title,
			Description: meta.description,
			Items:       items,
		})
	}

	slices.SortStableFunc(groups, func(a, b SkillGroup) int {
		return cmp.Compare(categoryRank(a.Category), categoryRank(b.Category))
	})
	return groups
}

func categoryRank(category string) int {
	if i := slices.Index(skillCategories, category); i >= 0 {
		return i
	}
	return len(skillCategories)
}
