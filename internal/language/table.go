package language

// languages is the source of truth for every lookup table. A row with an
// empty tag is a translation target the speech-to-text engine cannot emit.
var languages = []entry{
	{"af", "Afrikaans", "__af__"},
	{"am", "Amharic", "__am__"},
	{"ar", "Arabic", "__ar__"},
	{"as", "Assamese", "__as__"},
	{"az", "Azerbaijani", "__az__"},
	{"ba", "Bashkir", "__ba__"},
	{"be", "Belarusian", "__be__"},
	{"bg", "Bulgarian", "__bg__"},
	{"bn", "Bengali", "__bn__"},
	{"bo", "Tibetan", "__bo__"},
	{"br", "Breton", "__br__"},
	{"bs", "Bosnian", "__bs__"},
	{"ca", "Catalan", "__ca__"},
	{"ceb", "Cebuano", ""},
	{"co", "Corsican", ""},
	{"cs", "Czech", "__cs__"},
	{"cy", "Welsh", "__cy__"},
	{"da", "Danish", "__da__"},
	{"de", "German", "__de__"},
	{"el", "Greek", "__el__"},
	{"en", "English", "__en__"},
	{"eo", "Esperanto", ""},
	{"es", "Spanish", "__es__"},
	{"et", "Estonian", "__et__"},
	{"eu", "Basque", "__eu__"},
	{"fa", "Persian", "__fa__"},
	{"fi", "Finnish", "__fi__"},
	{"fil", "Filipino", ""},
	{"fo", "Faroese", "__fo__"},
	{"fr", "French", "__fr__"},
	{"fy", "Western Frisian", ""},
	{"ga", "Irish", ""},
	{"gd", "Scottish Gaelic", ""},
	{"gl", "Galician", "__gl__"},
	{"gu", "Gujarati", "__gu__"},
	{"ha", "Hausa", "__ha__"},
	{"haw", "Hawaiian", "__haw__"},
	{"he", "Hebrew", "__he__"},
	{"hi", "Hindi", "__hi__"},
	{"hmn", "Hmong", ""},
	{"hr", "Croatian", "__hr__"},
	{"ht", "Haitian Creole", "__ht__"},
	{"hu", "Hungarian", "__hu__"},
	{"hy", "Armenian", "__hy__"},
	{"id", "Indonesian", "__id__"},
	{"ig", "Igbo", ""},
	{"is", "Icelandic", "__is__"},
	{"it", "Italian", "__it__"},
	{"ja", "Japanese", "__ja__"},
	{"jv", "Javanese", "__jw__"},
	{"ka", "Georgian", "__ka__"},
	{"kk", "Kazakh", "__kk__"},
	{"km", "Khmer", "__km__"},
	{"kn", "Kannada", "__kn__"},
	{"ko", "Korean", "__ko__"},
	{"ku", "Kurdish", ""},
	{"ky", "Kyrgyz", ""},
	{"la", "Latin", "__la__"},
	{"lb", "Luxembourgish", "__lb__"},
	{"ln", "Lingala", "__ln__"},
	{"lo", "Lao", "__lo__"},
	{"lt", "Lithuanian", "__lt__"},
	{"lv", "Latvian", "__lv__"},
	{"mg", "Malagasy", "__mg__"},
	{"mi", "Maori", "__mi__"},
	{"mk", "Macedonian", "__mk__"},
	{"ml", "Malayalam", "__ml__"},
	{"mn", "Mongolian", "__mn__"},
	{"mr", "Marathi", "__mr__"},
	{"ms", "Malay", "__ms__"},
	{"mt", "Maltese", "__mt__"},
	{"my", "Burmese", "__my__"},
	{"ne", "Nepali", "__ne__"},
	{"nl", "Dutch", "__nl__"},
	{"nn", "Norwegian Nynorsk", "__nn__"},
	{"no", "Norwegian", "__no__"},
	{"ny", "Nyanja", ""},
	{"oc", "Occitan", "__oc__"},
	{"or", "Odia", ""},
	{"pa", "Punjabi", "__pa__"},
	{"pl", "Polish", "__pl__"},
	{"ps", "Pashto", "__ps__"},
	{"pt", "Portuguese", "__pt__"},
	{"ro", "Romanian", "__ro__"},
	{"ru", "Russian", "__ru__"},
	{"rw", "Kinyarwanda", ""},
	{"sa", "Sanskrit", "__sa__"},
	{"sd", "Sindhi", "__sd__"},
	{"si", "Sinhala", "__si__"},
	{"sk", "Slovak", "__sk__"},
	{"sl", "Slovenian", "__sl__"},
	{"sm", "Samoan", ""},
	{"sn", "Shona", "__sn__"},
	{"so", "Somali", "__so__"},
	{"sq", "Albanian", "__sq__"},
	{"sr", "Serbian", "__sr__"},
	{"st", "Southern Sotho", ""},
	{"su", "Sundanese", "__su__"},
	{"sv", "Swedish", "__sv__"},
	{"sw", "Swahili", "__sw__"},
	{"ta", "Tamil", "__ta__"},
	{"te", "Telugu", "__te__"},
	{"tg", "Tajik", "__tg__"},
	{"th", "Thai", "__th__"},
	{"tk", "Turkmen", "__tk__"},
	{"tl", "Tagalog", "__tl__"},
	{"tr", "Turkish", "__tr__"},
	{"tt", "Tatar", "__tt__"},
	{"ug", "Uyghur", ""},
	{"uk", "Ukrainian", "__uk__"},
	{"ur", "Urdu", "__ur__"},
	{"uz", "Uzbek", "__uz__"},
	{"vi", "Vietnamese", "__vi__"},
	{"xh", "Xhosa", ""},
	{"yi", "Yiddish", "__yi__"},
	{"yo", "Yoruba", "__yo__"},
	{"yue", "Cantonese", "__yue__"},
	{"zh", "Chinese", "__zh__"},
	{"zu", "Zulu", ""},
}
