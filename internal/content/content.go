// Package content resolves the static bilingual copy of the site into one
// fully localized tree per language.
package content

import (
	"embed"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/kuberbiotech/kuber-web/internal/icon"
	"github.com/kuberbiotech/kuber-web/internal/language"
)

//go:embed locales/*.yaml
var localesFS embed.FS

type NavItem struct {
	Name string   `yaml:"name"`
	Path string   `yaml:"path"`
	Icon icon.Key `yaml:"icon"`
}

type Offering struct {
	Name string   `yaml:"name"`
	Icon icon.Key `yaml:"icon"`
}

type Home struct {
	Tagline           string     `yaml:"tagline"`
	Welcome           string     `yaml:"welcome"`
	Description       string     `yaml:"description"`
	Offerings         []Offering `yaml:"offerings"`
	WhyChooseUs       []string   `yaml:"why_choose_us"`
	CallToAction      string     `yaml:"call_to_action"`
	ViewProducts      string     `yaml:"view_products"`
	WhatWeOffer       string     `yaml:"what_we_offer"`
	WhyChooseUsTitle  string     `yaml:"why_choose_us_title"`
	ReadyToStart      string     `yaml:"ready_to_start"`
	ExperienceQuality string     `yaml:"experience_quality"`
	ContactUsNow      string     `yaml:"contact_us_now"`
}

type Vision struct {
	Title string   `yaml:"title"`
	Text  string   `yaml:"text"`
	Icon  icon.Key `yaml:"icon"`
}

type Mission struct {
	Title  string   `yaml:"title"`
	Points []string `yaml:"points"`
	Icon   icon.Key `yaml:"icon"`
}

type CoreValues struct {
	Title  string   `yaml:"title"`
	Values []string `yaml:"values"`
}

type About struct {
	Title          string     `yaml:"title"`
	Intro          string     `yaml:"intro"`
	Specialization string     `yaml:"specialization"`
	Philosophy     string     `yaml:"philosophy"`
	Management     string     `yaml:"management"`
	Operations     string     `yaml:"operations"`
	Vision         Vision     `yaml:"vision"`
	Mission        Mission    `yaml:"mission"`
	CoreValues     CoreValues `yaml:"core_values"`
}

type Gallery struct {
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	Categories []string `yaml:"categories"`
}

type Contact struct {
	Title              string `yaml:"title"`
	Subtitle           string `yaml:"subtitle"`
	AddressLabel       string `yaml:"address_label"`
	PhoneLabel         string `yaml:"phone_label"`
	EmailLabel         string `yaml:"email_label"`
	Address            string `yaml:"address"`
	Phone              string `yaml:"phone"`
	Email              string `yaml:"email"`
	ReportSection      string `yaml:"report_section"`
	GetInTouch         string `yaml:"get_in_touch"`
	FormIntro          string `yaml:"form_intro"`
	NameLabel          string `yaml:"name_label"`
	EmailFieldLabel    string `yaml:"email_field_label"`
	MessageLabel       string `yaml:"message_label"`
	NamePlaceholder    string `yaml:"name_placeholder"`
	EmailPlaceholder   string `yaml:"email_placeholder"`
	MessagePlaceholder string `yaml:"message_placeholder"`
	SendMessage        string `yaml:"send_message"`
	Sending            string `yaml:"sending"`
}

type AddressBlock struct {
	Title   string   `yaml:"title"`
	Address []string `yaml:"address"`
}

type ContactDetails struct {
	Title   string `yaml:"title"`
	Phone   string `yaml:"phone"`
	Website string `yaml:"website"`
}

type WorkingHours struct {
	Title    string `yaml:"title"`
	Weekdays string `yaml:"weekdays"`
	Saturday string `yaml:"saturday"`
	Sunday   string `yaml:"sunday"`
}

type BusinessFocus struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type Social struct {
	Instagram string `yaml:"instagram"`
	Facebook  string `yaml:"facebook"`
	WhatsApp  string `yaml:"whatsapp"`
}

type Footer struct {
	Rights            string         `yaml:"rights"`
	RegisteredOffice  AddressBlock   `yaml:"registered_office"`
	ManufacturingUnit AddressBlock   `yaml:"manufacturing_unit"`
	ContactDetails    ContactDetails `yaml:"contact_details"`
	WorkingHours      WorkingHours   `yaml:"working_hours"`
	BusinessFocus     BusinessFocus  `yaml:"business_focus"`
	VisionStatement   string         `yaml:"vision_statement"`
	PrivacyPolicy     string         `yaml:"privacy_policy"`
	Terms             string         `yaml:"terms"`
	Tagline           string         `yaml:"tagline"`
	Social            Social         `yaml:"social"`
}

type Products struct {
	Title           string `yaml:"title"`
	GranuleProducts string `yaml:"granule_products"`
	LiquidProducts  string `yaml:"liquid_products"`
	NoProducts      string `yaml:"no_products"`
	NoCategory      string `yaml:"no_category"`
	PreviousImage   string `yaml:"previous_image"`
	NextImage       string `yaml:"next_image"`
	DefaultName     string `yaml:"default_name"`
}

type Brochures struct {
	Title    string `yaml:"title"`
	Download string `yaml:"download"`
	None     string `yaml:"none"`
}

type AdminTabs struct {
	Products  string `yaml:"products"`
	Contacts  string `yaml:"contacts"`
	Brochures string `yaml:"brochures"`
}

type Confirm struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Cancel  string `yaml:"cancel"`
	Delete  string `yaml:"delete"`
}

type Admin struct {
	Title              string    `yaml:"title"`
	LoginTitle         string    `yaml:"login_title"`
	EmailLabel         string    `yaml:"email_label"`
	PasswordLabel      string    `yaml:"password_label"`
	SignIn             string    `yaml:"sign_in"`
	Logout             string    `yaml:"logout"`
	SignedInAs         string    `yaml:"signed_in_as"`
	SessionExpires     string    `yaml:"session_expires"`
	Tabs               AdminTabs `yaml:"tabs"`
	AddProduct         string    `yaml:"add_product"`
	EditProduct        string    `yaml:"edit_product"`
	Cancel             string    `yaml:"cancel"`
	Save               string    `yaml:"save"`
	Preview            string    `yaml:"preview"`
	NameLabel          string    `yaml:"name_label"`
	DescriptionLabel   string    `yaml:"description_label"`
	CategoryLabel      string    `yaml:"category_label"`
	ImagesLabel        string    `yaml:"images_label"`
	ImagesEditNote     string    `yaml:"images_edit_note"`
	NoProducts         string    `yaml:"no_products"`
	NoContacts         string    `yaml:"no_contacts"`
	NoBrochures        string    `yaml:"no_brochures"`
	ContactName        string    `yaml:"contact_name"`
	ContactEmail       string    `yaml:"contact_email"`
	ContactPhone       string    `yaml:"contact_phone"`
	ContactMessage     string    `yaml:"contact_message"`
	ContactDate        string    `yaml:"contact_date"`
	ExportContacts     string    `yaml:"export_contacts"`
	BrochureTitleLabel string    `yaml:"brochure_title_label"`
	BrochureFileLabel  string    `yaml:"brochure_file_label"`
	Upload             string    `yaml:"upload"`
	BrochureSize       string    `yaml:"brochure_size"`
	NotAvailable       string    `yaml:"not_available"`
	Edit               string    `yaml:"edit"`
	Delete             string    `yaml:"delete"`
	Confirm            Confirm   `yaml:"confirm"`
}

// Tree is the fully localized copy for one language. Trees returned by
// Resolve share backing arrays and must be treated as read-only.
type Tree struct {
	Lang          language.Lang     `yaml:"-"`
	Company       string            `yaml:"company"`
	LanguageLabel string            `yaml:"language_label"`
	LanguageNames map[string]string `yaml:"language_names"`
	Nav           []NavItem         `yaml:"nav"`
	Home          Home              `yaml:"home"`
	About         About             `yaml:"about"`
	Gallery       Gallery           `yaml:"gallery"`
	Contact       Contact           `yaml:"contact"`
	Footer        Footer            `yaml:"footer"`
	Products      Products          `yaml:"products"`
	Brochures     Brochures         `yaml:"brochures"`
	Admin         Admin             `yaml:"admin"`
	Messages      map[string]string `yaml:"messages"`
}

// Message returns the localized banner text for key, or key itself when the
// table has no entry.
func (t Tree) Message(key string) string {
	if v, ok := t.Messages[key]; ok && v != "" {
		return v
	}
	return key
}

var trees = mustLoad()

// Resolve returns the content tree for lang. Unknown languages resolve to
// the default language.
func Resolve(lang language.Lang) Tree {
	if t, ok := trees[lang]; ok {
		return t
	}
	return trees[language.Default]
}

func mustLoad() map[language.Lang]Tree {
	out := make(map[language.Lang]Tree, len(language.All))
	for _, l := range language.All {
		t, err := load(l)
		if err != nil {
			panic(err)
		}
		out[l] = t
	}
	return out
}

func load(l language.Lang) (Tree, error) {
	data, err := localesFS.ReadFile("locales/" + string(l) + ".yaml")
	if err != nil {
		return Tree{}, errors.Wrapf(err, "read content table %s", l)
	}
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tree{}, errors.Wrapf(err, "parse content table %s", l)
	}
	t.Lang = l
	return t, nil
}
