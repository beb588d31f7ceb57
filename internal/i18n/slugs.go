package i18n

// slugTable maps a route key to its localized URL slug per language.
// Keys without an entry for a language fall back to the key itself, so
// the table only needs rows where the slug actually differs.
var slugTable = map[string]map[string]string{
	"search": {
		"fr": "recherche",
		"de": "suche",
		"es": "busqueda",
		"it": "ricerca",
		"pt": "pesquisa",
		"nl": "zoeken",
		"pl": "szukaj",
		"sv": "sok",
	},
	"caregivers": {
		"fr": "aides-a-domicile",
		"de": "betreuungskraefte",
		"es": "cuidadores",
		"it": "assistenti",
		"pt": "cuidadores",
		"nl": "verzorgers",
		"pl": "opiekunowie",
		"sv": "vardgivare",
	},
	"agencies": {
		"fr": "agences",
		"de": "agenturen",
		"es": "agencias",
		"it": "agenzie",
		"pt": "agencias",
		"nl": "bureaus",
		"pl": "agencje",
		"sv": "byraer",
	},
	"caregiver": {
		"fr": "aide-a-domicile",
		"de": "betreuungskraft",
		"es": "cuidador",
		"it": "assistente",
		"pt": "cuidador",
		"nl": "verzorger",
		"pl": "opiekun",
		"sv": "vardgivare",
	},
	"agency": {
		"fr": "agence",
		"de": "agentur",
		"es": "agencia",
		"it": "agenzia",
		"pt": "agencia",
		"nl": "bureau",
		"pl": "agencja",
		"sv": "byra",
	},
	"how-it-works": {
		"fr": "comment-ca-marche",
		"de": "so-funktioniert-es",
		"es": "como-funciona",
		"it": "come-funziona",
		"pt": "como-funciona",
		"nl": "hoe-het-werkt",
		"pl": "jak-to-dziala",
		"sv": "sa-fungerar-det",
	},
	"pricing": {
		"fr": "tarifs",
		"de": "preise",
		"es": "precios",
		"it": "prezzi",
		"pt": "precos",
		"nl": "prijzen",
		"pl": "cennik",
		"sv": "priser",
	},
	"about": {
		"fr": "a-propos",
		"de": "ueber-uns",
		"es": "sobre-nosotros",
		"it": "chi-siamo",
		"pt": "sobre-nos",
		"nl": "over-ons",
		"pl": "o-nas",
		"sv": "om-oss",
	},
	"contact": {
		"de": "kontakt",
		"es": "contacto",
		"it": "contatti",
		"pt": "contato",
		"pl": "kontakt",
		"sv": "kontakt",
	},
	"jobs": {
		"fr": "emplois",
		"de": "stellenangebote",
		"es": "empleos",
		"it": "lavori",
		"pt": "empregos",
		"nl": "vacatures",
		"pl": "oferty-pracy",
		"sv": "jobb",
	},
	"register": {
		"fr": "inscription",
		"de": "registrierung",
		"es": "registro",
		"it": "registrazione",
		"pt": "registro",
		"nl": "registreren",
		"pl": "rejestracja",
		"sv": "registrera",
	},
	"login": {
		"fr": "connexion",
		"de": "anmelden",
		"es": "acceso",
		"it": "accesso",
		"pt": "entrar",
		"nl": "inloggen",
		"pl": "logowanie",
		"sv": "logga-in",
	},
	"help": {
		"fr": "aide",
		"de": "hilfe",
		"es": "ayuda",
		"it": "aiuto",
		"pt": "ajuda",
		"pl": "pomoc",
		"sv": "hjalp",
	},
	"reviews": {
		"fr": "avis",
		"de": "bewertungen",
		"es": "opiniones",
		"it": "recensioni",
		"pt": "avaliacoes",
		"nl": "beoordelingen",
		"pl": "opinie",
		"sv": "omdomen",
	},
	"partners": {
		"fr": "partenaires",
		"de": "partner",
		"es": "socios",
		"it": "partner",
		"pt": "parceiros",
		"pl": "partnerzy",
		"sv": "partner",
	},
	"press": {
		"fr": "presse",
		"de": "presse",
		"es": "prensa",
		"it": "stampa",
		"pt": "imprensa",
		"nl": "pers",
		"pl": "prasa",
		"sv": "press",
	},
	"terms": {
		"fr": "conditions",
		"de": "agb",
		"es": "condiciones",
		"it": "termini",
		"pt": "termos",
		"nl": "voorwaarden",
		"pl": "regulamin",
		"sv": "villkor",
	},
	"privacy": {
		"fr": "confidentialite",
		"de": "datenschutz",
		"es": "privacidad",
		"it": "privacy",
		"pt": "privacidade",
		"pl": "prywatnosc",
		"sv": "integritet",
	},
	"imprint": {
		"fr": "mentions-legales",
		"de": "impressum",
		"es": "aviso-legal",
		"it": "note-legali",
		"pt": "aviso-legal",
		"nl": "colofon",
		"pl": "nota-prawna",
	},
	"faq": {},
	"blog": {},
	"accessibility": {
		"fr": "accessibilite",
		"de": "barrierefreiheit",
		"es": "accesibilidad",
		"it": "accessibilita",
		"pt": "acessibilidade",
		"nl": "toegankelijkheid",
		"pl": "dostepnosc",
		"sv": "tillganglighet",
	},
}

// Translate returns the localized slug for a route key, falling back to
// the key itself when either the key or the language is missing. It is
// a pure function of its inputs; regeneration depends on that.
func Translate(routeKey, languageCode string) string {
	langs, ok := slugTable[routeKey]
	if !ok {
		return routeKey
	}
	slug, ok := langs[languageCode]
	if !ok {
		return routeKey
	}
	return slug
}
