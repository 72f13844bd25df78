package main

import (
	"github.com/vladmesh/personal-site/internal/locale"
	"github.com/vladmesh/personal-site/internal/profile"
)

var (
	AboutMeEN = `For six years I've been writing software and teaching others to write it, mostly in Python. ` +
		`Sometimes as part of a large team, sometimes solo end-to-end. More often it's backend (DRF, FastAPI, SQLAlchemy), ` +
		`sometimes bots, scripts, scrapers, and desktop apps. Over the last year I've shifted to AI agents: chatbots, RAG, MCP, ` +
		`and agentic pipelines. I enjoy projects that align with my interests and values: education, AI safety, open data, ` +
		`and mental health. Here you can browse examples of my projects and my work experience, as well as read feedback ` +
		`from clients and students. I'm open to opportunities, feel free to reach out via the contacts below (or above).`

	AboutMeRU = `Шесть лет я занимаюсь тем, что пишу софт и учу других писать софт. Большей частью на Python. ` +
		`Иногда в составе большой команды, иногда самостоятельно под ключ. Чаще это бэкенд (DRF, FastAPI, SQLAlchemy), ` +
		`иногда боты, скрипты, парсеры и десктопные приложения. Последний год переключился на работу с AI-агентами. ` +
		`Чат-боты, RAG, MCP, агентские пайплайны. Больше всего люблю работать над проектами, которые хорошо согласуются ` +
		`с моими интересами и ценностями. Образование, AI-safety, открытые данные, mental health. На этом сайте можно ` +
		`увидеть примеры моих проектов и ознакомиться с моим опытом работы. А также почитать отзывы моих клиентов и учеников. ` +
		`Я открыт к предложениям, связаться со мной можно по контактам ниже (или выше)`
)

// baseHomeCopy is the static part of the home page. CV and contact hrefs,
// the contact blurb and the experience section are filled per request.
var baseHomeCopy = map[locale.Locale]HomeCopy{
	locale.EN: {
		Hero: HeroCopy{
			Eyebrow:      "Development / Mentorship",
			Greeting:     "Hi! I'm Vlad, a developer and mentor.",
			Subtitle:     "I build backends, set up pipelines, and integrate LLM agents.",
			CTAPrimary:   "Download CV (EN)",
			CTASecondary: "Contact me",
		},
		About: AboutCopy{Title: "About me", Paragraphs: []string{AboutMeEN}},
		Experience: profile.ExperienceSection{
			Title:   "Experience",
			Summary: "Experience",
			Items:   []profile.ExperienceItem{},
		},
		Projects:     ProjectsCopy{Title: "Projects", CTALabel: "All projects", CTAHref: "/en/projects"},
		Skills:       SectionCopy{Title: "Skills", Subtitle: "Core stack and tooling."},
		Testimonials: TestimonialsCopy{Title: "Testimonials", DevTab: "Developer", TeacherTab: "Mentor"},
		Contact:      ContactCopy{Title: "Let's talk"},
	},
	locale.RU: {
		Hero: HeroCopy{
			Eyebrow:      "Разработка / Менторство",
			Greeting:     "Привет! Я Влад, разработчик и ментор.",
			Subtitle:     "Пишу бэкенды, настраиваю пайплайны, интегрирую LLM-агентов.",
			CTAPrimary:   "Скачать CV (RU)",
			CTASecondary: "Написать мне",
		},
		About: AboutCopy{Title: "Обо мне", Paragraphs: []string{AboutMeRU}},
		Experience: profile.ExperienceSection{
			Title:   "Опыт работы",
			Summary: "Опыт работы",
			Items:   []profile.ExperienceItem{},
		},
		Projects:     ProjectsCopy{Title: "Проекты", CTALabel: "Все проекты", CTAHref: "/ru/projects"},
		Skills:       SectionCopy{Title: "Навыки", Subtitle: "Основные стек и инструменты."},
		Testimonials: TestimonialsCopy{Title: "Отзывы", DevTab: "Разработчик", TeacherTab: "Преподаватель"},
		Contact:      ContactCopy{Title: "Свяжемся?"},
	},
}

// contactPhrases glue the telegram and email links into one sentence.
type contactPhrases struct {
	TelegramLead string
	EmailJoin    string
	EmailLead    string
	End          string
}

var contactText = map[locale.Locale]contactPhrases{
	locale.EN: {
		TelegramLead: "Message me on Telegram ",
		EmailJoin:    " or send an email to ",
		EmailLead:    "Send an email to ",
		End:          ".",
	},
	locale.RU: {
		TelegramLead: "Пишите в Telegram ",
		EmailJoin:    " или на почту ",
		EmailLead:    "Пишите на почту ",
		End:          ".",
	},
}

// UICopy is the chrome shared by every page.
type UICopy struct {
	Brand        string
	Nav          NavCopy
	Footer       FooterCopy
	DetailsLabel string
	ProjectsPage ProjectsPageCopy
	ErrorPage    ErrorPageCopy
}

type NavCopy struct {
	Projects     string
	Skills       string
	Testimonials string
	Contact      string
}

type FooterCopy struct {
	Rights      string
	SourceLabel string
}

type ProjectsPageCopy struct {
	MetaTitle       string
	MetaDescription string
	Eyebrow         string
	Title           string
	Intro           string
}

type ErrorPageCopy struct {
	Title   string
	Message string
	Contact string
}

var uiCopy = map[locale.Locale]UICopy{
	locale.EN: {
		Brand: "Vladislav Meshkorudnyj",
		Nav: NavCopy{
			Projects:     "Projects",
			Skills:       "Skills",
			Testimonials: "Testimonials",
			Contact:      "Contact",
		},
		Footer:       FooterCopy{Rights: "All rights reserved.", SourceLabel: "Source code"},
		DetailsLabel: "View case",
		ProjectsPage: ProjectsPageCopy{
			MetaTitle:       "Projects | Vladislav Meshkorudnyj",
			MetaDescription: "Portfolio of backend and AI projects shipped by Vladislav Meshkorudnyj.",
			Eyebrow:         "Portfolio",
			Title:           "Selected projects",
			Intro:           "Case studies of backend, platform, and AI work. Each project includes metrics and stack details.",
		},
		ErrorPage: ErrorPageCopy{
			Title:   "Something went wrong",
			Message: "The page content is temporarily unavailable. Please try again in a few minutes.",
			Contact: "You can still reach me directly:",
		},
	},
	locale.RU: {
		Brand: "Vladislav Meshkorudnyj",
		Nav: NavCopy{
			Projects:     "Проекты",
			Skills:       "Навыки",
			Testimonials: "Отзывы",
			Contact:      "Контакты",
		},
		Footer:       FooterCopy{Rights: "Все права защищены.", SourceLabel: "Исходники сайта"},
		DetailsLabel: "Подробнее",
		ProjectsPage: ProjectsPageCopy{
			MetaTitle:       "Проекты | Владислав Мешкорудный",
			MetaDescription: "Портфолио backend и AI проектов.",
			Eyebrow:         "Портфолио",
			Title:           "Ключевые проекты",
			Intro:           "Кейсы по backend-разработке, платформенным решениям и AI-агентам. Каждый проект с цифрами и стеком.",
		},
		ErrorPage: ErrorPageCopy{
			Title:   "Что-то пошло не так",
			Message: "Содержимое страницы временно недоступно. Попробуйте обновить её через несколько минут.",
			Contact: "Связаться со мной можно напрямую:",
		},
	},
}

func uiFor(l locale.Locale) UICopy {
	if c, ok := uiCopy[l]; ok {
		return c
	}
	return uiCopy[locale.Default]
}
