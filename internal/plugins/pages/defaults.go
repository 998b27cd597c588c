package pages

// defaultPages are the built-in legal documents served until an admin
// stores their own version. Content is plain HTML the frontend renders
// verbatim; the texts are the campaign's standing boilerplate.
var defaultPages = map[string]Page{
	"datenschutz": {
		Slug:  "datenschutz",
		Title: "Datenschutzerklärung",
		Content: `<h2>Datenschutzerklärung</h2>
<p>Die im Rahmen des Gewinnspiels erhobenen personenbezogenen Daten (Name, Firma, Position, E-Mail-Adresse) werden ausschließlich zur Durchführung des Gewinnspiels verwendet.</p>
<p>Die Daten werden nicht an Dritte weitergegeben und nach Abschluss des Gewinnspiels gelöscht.</p>
<p>Verantwortlich im Sinne der DSGVO ist die RealCore Group GmbH. Bei Fragen zum Datenschutz wenden Sie sich an <a href="mailto:datenschutz@realcore.de">datenschutz@realcore.de</a>.</p>`,
	},
	"teilnahmebedingungen": {
		Slug:  "teilnahmebedingungen",
		Title: "Teilnahmebedingungen",
		Content: `<h2>Teilnahmebedingungen</h2>
<p>Teilnahmeberechtigt sind Geschäftspartner und Kunden der RealCore Group. Pro Person ist eine Teilnahme möglich.</p>
<p>Mit der Teilnahme stimmen Sie zu, dass Ihre Spendenauswahl in die Gesamtauswertung einfließt. Die Gewinner werden nach Teilnahmeschluss ausgelost und per E-Mail benachrichtigt.</p>
<p>Der Rechtsweg ist ausgeschlossen. Eine Barauszahlung der Gewinne ist nicht möglich.</p>`,
	},
}

// defaultPage returns the built-in document for a slug, if one exists.
func defaultPage(slug string) (*Page, bool) {
	p, ok := defaultPages[slug]
	if !ok {
		return nil, false
	}
	return &p, true
}
