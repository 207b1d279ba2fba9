package routes

import "github.com/gofiber/fiber/v2"

type docEndpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Auth        bool   `json:"auth"`
}

var docEndpoints = []docEndpoint{
	{"POST", "/api/auth/register", "Create an account and receive a token", false},
	{"POST", "/api/auth/login", "Exchange credentials for a token", false},
	{"GET", "/api/auth/me", "Current user plus profile and its load source", true},
	{"GET", "/api/v1/profile", "Load the profile (snapshot or default template)", true},
	{"PUT", "/api/v1/profile", "Shallow-merge profile fields and persist the snapshot", true},
	{"PUT", "/api/v1/profile/goal", "Set the active goal", true},
	{"DELETE", "/api/v1/profile", "Reset to the default template and drop the snapshot", true},
	{"GET", "/api/v1/onboarding/plan", "Preview the action set for a goal and intensity", true},
	{"POST", "/api/v1/onboarding/complete", "Commit goal, intensity and generated actions", true},
	{"GET", "/api/v1/actions", "List actions with consistency and streak", true},
	{"POST", "/api/v1/actions/:id/log", "Toggle one action's daily status", true},
	{"GET", "/api/v1/actions/stats", "Completion rate, average streak and aggregates", true},
	{"GET", "/api/v1/progress/projections", "Biomarker projections and weekly consistency", true},
	{"POST", "/api/v1/chat", "Ask the assistant a question", true},
	{"GET", "/api/v1/chat/history", "Paginated assistant exchanges", true},
	{"DELETE", "/api/v1/chat/history", "Clear assistant history", true},
	{"GET", "/api/v1/ws", "WebSocket assistant channel (token query param)", true},
	{"GET", "/api/v1/reference/statistics", "Population biomarker statistics", true},
	{"GET", "/api/v1/reference/risk", "Risk bucket distribution", true},
	{"GET", "/api/v1/reference/correlations", "Strongest biomarker correlations", true},
	{"GET", "/api/v1/reference/demographics", "Age and gender breakdowns", true},
	{"GET", "/api/v1/reference/findings", "Key population findings", true},
}

// RegisterDocs serves a machine-readable endpoint listing. Only wired when
// docs are enabled in a development environment.
func RegisterDocs(app *fiber.App) {
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"title":     "Vytal Dashboard API",
			"endpoints": docEndpoints,
		})
	})
}
