package models

// ChangeFreq values defined by the sitemaps.org protocol.
const (
	FreqAlways  = "always"
	FreqHourly  = "hourly"
	FreqDaily   = "daily"
	FreqWeekly  = "weekly"
	FreqMonthly = "monthly"
	FreqYearly  = "yearly"
	FreqNever   = "never"
)

// StaticRoute describes one translated marketing route. Path is the
// canonical (English) path; when RouteKey is set the first path segment
// is replaced by the localized slug for the target language.
type StaticRoute struct {
	Path       string
	RouteKey   string
	Priority   float64
	ChangeFreq string
}

// StaticRoutes is the reference route configuration. Order is the order
// entries appear in generated sitemaps.
var StaticRoutes = []StaticRoute{
	{Path: "/", Priority: 1.0, ChangeFreq: FreqDaily},
	{Path: "/search", RouteKey: "search", Priority: 0.9, ChangeFreq: FreqDaily},
	{Path: "/caregivers", RouteKey: "caregivers", Priority: 0.9, ChangeFreq: FreqDaily},
	{Path: "/agencies", RouteKey: "agencies", Priority: 0.9, ChangeFreq: FreqDaily},
	{Path: "/how-it-works", RouteKey: "how-it-works", Priority: 0.8, ChangeFreq: FreqMonthly},
	{Path: "/pricing", RouteKey: "pricing", Priority: 0.8, ChangeFreq: FreqMonthly},
	{Path: "/about", RouteKey: "about", Priority: 0.6, ChangeFreq: FreqMonthly},
	{Path: "/contact", RouteKey: "contact", Priority: 0.6, ChangeFreq: FreqMonthly},
	{Path: "/faq", RouteKey: "faq", Priority: 0.7, ChangeFreq: FreqWeekly},
	{Path: "/blog", RouteKey: "blog", Priority: 0.7, ChangeFreq: FreqDaily},
	{Path: "/jobs", RouteKey: "jobs", Priority: 0.7, ChangeFreq: FreqWeekly},
	{Path: "/register", RouteKey: "register", Priority: 0.8, ChangeFreq: FreqMonthly},
	{Path: "/register/caregiver", RouteKey: "register", Priority: 0.7, ChangeFreq: FreqMonthly},
	{Path: "/register/agency", RouteKey: "register", Priority: 0.7, ChangeFreq: FreqMonthly},
	{Path: "/login", RouteKey: "login", Priority: 0.4, ChangeFreq: FreqYearly},
	{Path: "/help", RouteKey: "help", Priority: 0.5, ChangeFreq: FreqMonthly},
	{Path: "/help/safety", RouteKey: "help", Priority: 0.5, ChangeFreq: FreqMonthly},
	{Path: "/reviews", RouteKey: "reviews", Priority: 0.6, ChangeFreq: FreqWeekly},
	{Path: "/partners", RouteKey: "partners", Priority: 0.4, ChangeFreq: FreqMonthly},
	{Path: "/press", RouteKey: "press", Priority: 0.3, ChangeFreq: FreqMonthly},
	{Path: "/terms", RouteKey: "terms", Priority: 0.2, ChangeFreq: FreqYearly},
	{Path: "/privacy", RouteKey: "privacy", Priority: 0.2, ChangeFreq: FreqYearly},
	{Path: "/imprint", RouteKey: "imprint", Priority: 0.2, ChangeFreq: FreqYearly},
	{Path: "/accessibility", RouteKey: "accessibility", Priority: 0.2, ChangeFreq: FreqYearly},
}

// Languages served by the site. Order is the order alternate links are
// emitted in.
var Languages = []string{"en", "fr", "de", "es", "it", "pt", "nl", "pl", "sv"}
