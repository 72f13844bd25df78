package main

import (
	"github.com/vladmesh/personal-site/internal/config"
	"github.com/vladmesh/personal-site/internal/locale"
	"github.com/vladmesh/personal-site/internal/profile"
)

type HeroCopy struct {
	Eyebrow      string
	Greeting     string
	Subtitle     string
	CTAPrimary   string
	CTASecondary string
	CVHref       string
	ContactHref  string
}

type AboutCopy struct {
	Title      string
	Paragraphs []string
}

type ProjectsCopy struct {
	Title    string
	CTALabel string
	CTAHref  string
}

type SectionCopy struct {
	Title    string
	Subtitle string
}

type TestimonialsCopy struct {
	Title      string
	DevTab     string
	TeacherTab string
}

// Fragment kinds.
const (
	FragmentText = "text"
	FragmentLink = "link"
)

// Fragment is one piece of inline rich text: plain text, or a link when Kind
// is FragmentLink.
type Fragment struct {
	Kind string
	Text string
	Href string
}

func (f Fragment) IsLink() bool { return f.Kind == FragmentLink }

type ContactCopy struct {
	Title       string
	Description []Fragment
}

// HomeCopy is the view model of the home page.
type HomeCopy struct {
	Hero         HeroCopy
	About        AboutCopy
	Experience   profile.ExperienceSection
	Projects     ProjectsCopy
	Skills       SectionCopy
	Testimonials TestimonialsCopy
	Contact      ContactCopy
}

type homeOverrides struct {
	Experience *profile.ExperienceSection
	ResumeHref string
}

// buildHomeCopy merges the static copy for l with per-request data.
func buildHomeCopy(l locale.Locale, contacts profile.ContactsResult, links config.LinksConfig, overrides homeOverrides) HomeCopy {
	base, ok := baseHomeCopy[l]
	if !ok {
		l = locale.Default
		base = baseHomeCopy[l]
	}

	out := base
	out.Hero.CVHref = overrides.ResumeHref
	if out.Hero.CVHref == "" {
		out.Hero.CVHref = staticCV(l, links)
	}
	if primary, ok := profile.SelectContact(contacts, "telegram", "email"); ok {
		out.Hero.ContactHref = primary.Href
	}
	out.Contact.Description = buildContactDescription(l, contacts)
	if overrides.Experience != nil {
		out.Experience = *overrides.Experience
	}
	return out
}

func staticCV(l locale.Locale, links config.LinksConfig) string {
	if l == locale.RU {
		return links.CVRU
	}
	return links.CVEN
}

// buildContactDescription renders the contact blurb from whichever of the
// telegram and email links exist.
func buildContactDescription(l locale.Locale, contacts profile.ContactsResult) []Fragment {
	phrases, ok := contactText[l]
	if !ok {
		phrases = contactText[locale.Default]
	}
	telegram, hasTelegram := contacts.Lookup["telegram"]
	email, hasEmail := contacts.Lookup["email"]

	var out []Fragment
	switch {
	case hasTelegram && hasEmail:
		out = []Fragment{
			{Kind: FragmentText, Text: phrases.TelegramLead},
			{Kind: FragmentLink, Text: profile.TelegramHandle(telegram), Href: telegram.Href},
			{Kind: FragmentText, Text: phrases.EmailJoin},
			{Kind: FragmentLink, Text: email.Display, Href: email.Href},
		}
	case hasTelegram:
		out = []Fragment{
			{Kind: FragmentText, Text: phrases.TelegramLead},
			{Kind: FragmentLink, Text: profile.TelegramHandle(telegram), Href: telegram.Href},
		}
	case hasEmail:
		out = []Fragment{
			{Kind: FragmentText, Text: phrases.EmailLead},
			{Kind: FragmentLink, Text: email.Display, Href: email.Href},
		}
	default:
		return nil
	}
	return append(out, Fragment{Kind: FragmentText, Text: phrases.End})
}
