package translate

// catalogDe holds the German messages, keyed by their en-US format.
var catalogDe = []struct {
	key string
	msg string
}{
	// cpu
	{"stack full", "Stapel voll"},
	{"stack empty", "Stapel leer"},
	{"address out of range", "Adresse außerhalb des Bereichs"},
	{"rom size %d exceeds %d bytes", "ROM-Größe %d überschreitet %d Bytes"},
	{"bad opcode 0x%04x at 0x%03x", "ungültiger Opcode 0x%04x bei 0x%03x"},
	{"fault 0x%04x at 0x%03x: %v", "Fehler 0x%04x bei 0x%03x: %v"},
	{"unknown shift mode %q", "unbekannter Schiebemodus %q"},
	{"unknown index mode %q", "unbekannter Indexmodus %q"},

	// assembler
	{".equ syntax", ".equ Syntaxfehler"},
	{".equ duplicated", ".equ doppelt"},
	{"label duplicated", "Marke doppelt"},
	{"label %v missing", "Marke %v fehlt"},
	{".macro syntax", ".macro Syntaxfehler"},
	{".macro duplicated", ".macro doppelt"},
	{".macro in .macro prohibited", ".macro in .macro verboten"},
	{".macro without .endm", ".macro ohne .endm"},
	{".endm without .macro", ".endm ohne .macro"},
	{"excessive arguments", "zu viele Argumente"},
	{"operand missing", "Operand fehlt"},
	{"value out of range", "Wert außerhalb des Bereichs"},
	{"register invalid", "ungültiges Register"},
	{"instruction invalid", "ungültiger Befehl"},
	{"line %d '%v' %v", "Zeile %d '%v' %v"},
	{"'%v' is not a number", "'%v' ist keine Zahl"},
	{"$(%v) is not a valid expression", "$(%v) ist kein gültiger Ausdruck"},
	{"macro %v line %v %v", "Makro %v Zeile %v %v"},

	// io
	{"rom too large", "ROM zu groß"},
	{"output missing", "Ausgabe fehlt"},
	{"keymap entry '%v' invalid", "Tastenbelegung '%v' ungültig"},

	// emulator
	{"config format unknown", "Konfigurationsformat unbekannt"},
	{"config hz out of range", "Konfiguration hz außerhalb des Bereichs"},
	{"config key unknown", "Konfigurationsschlüssel unbekannt"},
	{"pc 0x%03x %v", "pc 0x%03x %v"},
	{"line %d pc 0x%03x %v", "Zeile %d pc 0x%03x %v"},
}
