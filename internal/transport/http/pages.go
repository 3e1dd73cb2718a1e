package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var landingPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>Trip Planner API</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#11998e,#38ef7d); color: #fff; min-height: 100vh; display: flex; flex-direction: column; }
header { flex: 1; padding: 60px 20px; text-align: center; }
code { background: rgba(0,0,0,0.25); padding: 2px 8px; border-radius: 4px; }
.endpoints { max-width: 640px; margin: 0 auto; text-align: left; background: rgba(0,0,0,0.15); padding: 24px; border-radius: 8px; }
.endpoints li { margin: 8px 0; }
a { color: #fff; }
footer { text-align: center; padding: 20px; font-size: 14px; opacity: 0.8; }
</style>
</head>
<body>
<header>
  <h1>Trip Planner API</h1>
  <p>Personalized itineraries, hotel and activity picks, and cost estimates for your next trip.</p>
  <div class="endpoints">
    <ul>
      <li><code>GET /api/v1/destinations</code> — browse the catalog</li>
      <li><code>POST /api/v1/destinations/suggest</code> — match destinations to your interests</li>
      <li><code>POST /api/v1/trip/plan</code> — build a full trip recommendation</li>
      <li><code>GET /api/v1/trip/templates</code> — curated trip ideas</li>
      <li><a href="/swagger/index.html">Interactive API documentation</a></li>
    </ul>
  </div>
</header>
<footer>Recommendations are computed from the travel catalog; bookings are simulated.</footer>
</body>
</html>`

func RegisterPages(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPageHTML)
	})
}
