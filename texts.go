package main

// UI strings per language. Missing entries fall back to English, then to
// the key itself.
var texts = map[string]map[string]string{
	"dialog_title": {"en": "Who is playing?", "jp": "だれがあそぶ？", "pt": "Quem vai brincar?"},
	"lbl_select":   {"en": "Select your profile:", "jp": "プロファイルをえらんでね:", "pt": "Selecione seu perfil:"},
	"btn_create":   {"en": "Create New", "jp": "あたらしくつくる", "pt": "Criar Novo"},
	"btn_start":    {"en": "Start!", "jp": "スタート！", "pt": "Começar!"},
	"input_msg":    {"en": "Enter Name:", "jp": "なまえをいれてね:", "pt": "Digite o Nome:"},
	"warn_select":  {"en": "Please select a profile!", "jp": "プロファイルをえらんでください！", "pt": "Por favor selecione um perfil!"},
	"btn_color":    {"en": "Color Set", "jp": "いろあそび", "pt": "Cores"},
	"btn_write":    {"en": "Write Mode", "jp": "かいてみよう", "pt": "Escrever"},
	"btn_bgm":      {"en": "BGM", "jp": "おんがく", "pt": "Música"},
	"btn_mode":     {"en": "Mode", "jp": "きせかえ", "pt": "Modo"},
	"lbl_theme":    {"en": "Themes", "jp": "はいけい", "pt": "Temas"},
	"btn_preview":  {"en": "Preview", "jp": "みてみる", "pt": "Ver"},
	"lbl_sticker":  {"en": "Stickers", "jp": "シール", "pt": "Adesivos"},
	"modal_color":  {"en": "Color: ", "jp": "いろ: ", "pt": "Cor: "},
	"color_now":    {"en": "now: ", "jp": "いま: ", "pt": "agora: "},
	"modal_music":  {"en": "Select Music", "jp": "おんがくをえらぶ", "pt": "Escolher Música"},
	"btn_stop":     {"en": "Stop Music", "jp": "とめる", "pt": "Parar Música"},
	"btn_back":     {"en": "Back", "jp": "もどる", "pt": "Voltar"},
	"btn_save":     {"en": "Download", "jp": "ダウンロード", "pt": "Baixar"},
	"msg_saved":    {"en": "Saved & copied path: ", "jp": "ほぞんしました！ ほぞんさき: ", "pt": "Salvo e copiado: "},
	"no_theme":     {"en": "(no background)", "jp": "(はいけいなし)", "pt": "(sem fundo)"},
	"place_hint":   {"en": "Click the paper to place ", "jp": "かみをクリックしてはってね ", "pt": "Clique no papel para colar "},
	"letter_saved": {"en": "Letter saved: ", "jp": "てがみをほぞんしました: ", "pt": "Carta salva: "},
	"letter_open":  {"en": "Letter opened: ", "jp": "てがみをひらきました: ", "pt": "Carta aberta: "},
}

var profileNames = map[string]map[string]string{
	"unicorn": {"en": "Unicorn", "jp": "ユニコーン", "pt": "Unicórnio"},
	"rainbow": {"en": "Rainbow", "jp": "にじ", "pt": "Arco-íris"},
	"nature":  {"en": "Nature", "jp": "しぜん", "pt": "Natureza"},
}

// Keyed by file name with extension.
var bgmNames = map[string]map[string]string{
	"01_earth_root.wav":    {"en": "Earth", "jp": "だいち", "pt": "Terra"},
	"02_flow_state.wav":    {"en": "Flowing", "jp": "ながれ", "pt": "Fluindo"},
	"03_solar_clarity.mp3": {"en": "Clarity", "jp": "ひかり", "pt": "Claridade"},
	"04_cloud_dream.mp3":   {"en": "Dream", "jp": "ゆめ", "pt": "Sonho"},
}

var styleNames = map[string]map[string]string{
	"clean":  {"en": "Clean", "jp": "シンプル", "pt": "Limpo"},
	"dark":   {"en": "Dark", "jp": "ダーク", "pt": "Escuro"},
	"sepia":  {"en": "Sepia", "jp": "セピア", "pt": "Sépia"},
	"ice":    {"en": "Ice", "jp": "アイス", "pt": "Gelo"},
	"pastel": {"en": "Pastel", "jp": "パステル", "pt": "Pastel"},
}

func tr(lang, key string) string {
	return lookupName(texts, key, lang)
}

// lookupName resolves a display name from table, falling back to English
// and then to id.
func lookupName(table map[string]map[string]string, id, lang string) string {
	names, ok := table[id]
	if !ok {
		return id
	}
	if s, ok := names[lang]; ok {
		return s
	}
	if s, ok := names["en"]; ok {
		return s
	}
	return id
}
