// Package locale serves the bilingual UI content tables so the presentation
// layer carries no embedded string tables of its own.
package locale

import "errors"

var ErrUnknownLocale = errors.New("unknown locale")

// Content is the full text bundle for one locale.
type Content struct {
	Locale   string       `json:"locale"`
	Hero     HeroText     `json:"hero"`
	Selector SelectorText `json:"selector"`
}

type HeroText struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

type SelectorText struct {
	Title             string `json:"title"`
	Subtitle          string `json:"subtitle"`
	SearchPlaceholder string `json:"search_placeholder"`
	StateLabel        string `json:"state_label"`
	DistrictLabel     string `json:"district_label"`
	DetectLocation    string `json:"detect_location"`
	NoResults         string `json:"no_results"`
	Detecting         string `json:"detecting"`
}

var content = map[string]Content{
	"en": {
		Locale: "en",
		Hero: HeroText{
			Title:       "Know Your MGNREGA Performance",
			Subtitle:    "Easy access to your district's employment guarantee program data",
			Description: "Select your district to see how the Mahatma Gandhi National Rural Employment Guarantee Act is performing in your area.",
			CTA:         "Detect My Location",
		},
		Selector: SelectorText{
			Title:             "Select Your District",
			Subtitle:          "Choose your district to see MGNREGA performance",
			SearchPlaceholder: "Type your district name...",
			StateLabel:        "State",
			DistrictLabel:     "District",
			DetectLocation:    "Detect my location",
			NoResults:         "No districts found",
			Detecting:         "Detecting your location...",
		},
	},
	"hi": {
		Locale: "hi",
		Hero: HeroText{
			Title:       "अपने मनरेगा प्रदर्शन को जानें",
			Subtitle:    "अपने जिले के रोजगार गारंटी कार्यक्रम का डेटा आसानी से देखें",
			Description: "अपने क्षेत्र में महात्मा गांधी राष्ट्रीय ग्रामीण रोजगार गारंटी अधिनियम का प्रदर्शन देखने के लिए अपना जिला चुनें।",
			CTA:         "मेरा स्थान पता करें",
		},
		Selector: SelectorText{
			Title:             "अपना जिला चुनें",
			Subtitle:          "मनरेगा प्रदर्शन देखने के लिए अपना जिला चुनें",
			SearchPlaceholder: "अपने जिले का नाम टाइप करें...",
			StateLabel:        "राज्य",
			DistrictLabel:     "जिला",
			DetectLocation:    "मेरा स्थान पता करें",
			NoResults:         "कोई जिला नहीं मिला",
			Detecting:         "आपका स्थान पता लगा रहे हैं...",
		},
	},
}

// Lookup returns the content bundle for the given locale tag.
func Lookup(tag string) (Content, error) {
	c, ok := content[tag]
	if !ok {
		return Content{}, ErrUnknownLocale
	}
	return c, nil
}
