package translations

import "sort"

// defaults is the built-in dictionary the site ships with. Overrides in
// the database shadow these entries; deleting an override reverts to the
// value here. German is the authoritative text, the English column is a
// courtesy translation for international partners.
var defaults = map[string]map[string]string{
	"de": {
		"header.title":          "Weihnachts-Gewinnspiel",
		"header.subtitle":       "Mitmachen und Gutes tun",
		"header.christmas":      "Frohe Weihnachten",
		"header.cta":            "Jetzt teilnehmen",
		"header.partners":       "Unsere Partner",
		"header.totalPrizes":    "Gesamtwert der Preise",
		"header.everyEuroCounts": "Jeder Euro zählt",

		"countdown.deadline":       "Teilnahmeschluss",
		"countdown.days":           "Tage",
		"countdown.hours":          "Stunden",
		"countdown.minutes":        "Minuten",
		"countdown.seconds":        "Sekunden",
		"countdown.participateNow": "Jetzt mitmachen",

		"message.intro":      "Mit Ihrer Teilnahme entscheiden Sie, an welche Organisation wir spenden.",
		"message.howItWorks": "So funktioniert es",
		"message.step1":      "Formular ausfüllen",
		"message.step2":      "Spendenorganisation wählen",
		"message.step3":      "Mit etwas Glück gewinnen",

		"form.name":                 "Name",
		"form.firma":                "Firma",
		"form.position":             "Position",
		"form.email":                "E-Mail-Adresse",
		"form.spendenauswahl":       "Spendenauswahl",
		"form.teilnahmebedingungen": "Ich akzeptiere die Teilnahmebedingungen",
		"form.submit":               "Teilnehmen",
		"form.success":              "Vielen Dank für Ihre Teilnahme!",

		"prizes.title":    "Das gibt es zu gewinnen",
		"prizes.subtitle": "Unter allen Teilnehmern verlosen wir",
		"prizes.first":    "1. Preis",
		"prizes.second":   "2. Preis",
		"prizes.third":    "3. Preis",
		"prizes.voucher":  "Gutschein",

		"partners.title":                 "Die Organisationen",
		"partners.subtitle":              "Ihre Stimme entscheidet über die Spende",
		"partners.learnMore":             "Mehr erfahren",
		"partners.lichtblicke.name":      "Lichtblicke e.V.",
		"partners.lichtblicke.desc":      "Hilfe für Kinder und Familien in NRW",
		"partners.lichtblicke.highlight": "Hilft Familien in Not",
		"partners.diospi.name":           "Diospi Suyana",
		"partners.diospi.desc":           "Krankenhaus in den peruanischen Anden",
		"partners.diospi.highlight":      "Medizinische Hilfe in Peru",

		"faq.title":    "Häufige Fragen",
		"faq.subtitle": "Alles Wichtige zur Teilnahme",
		"faq.q1":       "Wer darf teilnehmen?",
		"faq.a1":       "Alle Geschäftspartner und Kunden der RealCore Group.",
		"faq.q2":       "Bis wann kann ich teilnehmen?",
		"faq.a2":       "Der Teilnahmeschluss steht auf der Startseite.",
		"faq.q3":       "Was passiert mit meinen Daten?",
		"faq.a3":       "Sie werden nur für das Gewinnspiel verwendet und danach gelöscht.",
		"faq.q4":       "Wie erfahre ich, ob ich gewonnen habe?",
		"faq.a4":       "Die Gewinner werden per E-Mail benachrichtigt.",

		"thanks.title":  "Vielen Dank!",
		"thanks.text":   "Ihre Teilnahme ist eingegangen.",
		"thankyou.team": "Ihr RealCore Team",

		"footer.privacy": "Datenschutz",
		"footer.terms":   "Teilnahmebedingungen",
		"footer.rights":  "Alle Rechte vorbehalten",
	},
	"en": {
		"header.title":          "Christmas Sweepstakes",
		"header.subtitle":       "Take part and do good",
		"header.christmas":      "Merry Christmas",
		"header.cta":            "Enter now",
		"header.partners":       "Our partners",
		"header.totalPrizes":    "Total prize value",
		"header.everyEuroCounts": "Every euro counts",

		"countdown.deadline":       "Entry deadline",
		"countdown.days":           "Days",
		"countdown.hours":          "Hours",
		"countdown.minutes":        "Minutes",
		"countdown.seconds":        "Seconds",
		"countdown.participateNow": "Enter now",

		"message.intro":      "With your entry you decide which organisation we donate to.",
		"message.howItWorks": "How it works",
		"message.step1":      "Fill in the form",
		"message.step2":      "Pick a charity",
		"message.step3":      "Win with a bit of luck",

		"form.name":                 "Name",
		"form.firma":                "Company",
		"form.position":             "Position",
		"form.email":                "Email address",
		"form.spendenauswahl":       "Donation choice",
		"form.teilnahmebedingungen": "I accept the terms of participation",
		"form.submit":               "Enter",
		"form.success":              "Thank you for participating!",

		"prizes.title":    "Prizes to win",
		"prizes.subtitle": "Among all participants we raffle",
		"prizes.first":    "1st prize",
		"prizes.second":   "2nd prize",
		"prizes.third":    "3rd prize",
		"prizes.voucher":  "Voucher",

		"partners.title":                 "The organisations",
		"partners.subtitle":              "Your vote decides the donation",
		"partners.learnMore":             "Learn more",
		"partners.lichtblicke.name":      "Lichtblicke e.V.",
		"partners.lichtblicke.desc":      "Support for children and families in NRW",
		"partners.lichtblicke.highlight": "Helps families in need",
		"partners.diospi.name":           "Diospi Suyana",
		"partners.diospi.desc":           "Hospital in the Peruvian Andes",
		"partners.diospi.highlight":      "Medical care in Peru",

		"faq.title":    "Frequently asked questions",
		"faq.subtitle": "Everything about participating",
		"faq.q1":       "Who may participate?",
		"faq.a1":       "All business partners and customers of the RealCore Group.",
		"faq.q2":       "Until when can I enter?",
		"faq.a2":       "The deadline is shown on the start page.",
		"faq.q3":       "What happens to my data?",
		"faq.a3":       "It is used for the sweepstakes only and deleted afterwards.",
		"faq.q4":       "How do I find out whether I won?",
		"faq.a4":       "Winners are notified by email.",

		"thanks.title":  "Thank you!",
		"thanks.text":   "Your entry has been received.",
		"thankyou.team": "Your RealCore team",

		"footer.privacy": "Privacy",
		"footer.terms":   "Terms of participation",
		"footer.rights":  "All rights reserved",
	},
}

// lookupDefault returns the built-in value for a language/key pair.
func lookupDefault(language, key string) (string, bool) {
	langMap, ok := defaults[language]
	if !ok {
		return "", false
	}
	value, ok := langMap[key]
	return value, ok
}

// DefaultKeys returns the built-in keys for a language, used by the admin
// dashboard to list everything that can be overridden.
func DefaultKeys(language string) []string {
	keys := make([]string, 0, len(defaults[language]))
	for k := range defaults[language] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
