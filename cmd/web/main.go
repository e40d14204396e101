package main

import (
	"html/template"
	"net"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroid-arena/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

var page = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Asteroid Arena</title></head>
<body style="background:#000;color:#ddd;font-family:monospace">
<h1>Asteroid Arena</h1>
<p>Connect with a terminal:</p>
<pre>ssh -t {{.Host}} -p {{.Port}}</pre>
<ul>
<li>Ships: {{.Config.Players}}</li>
<li>Friendly fire: {{if .Config.FriendlyFire}}on{{else}}off{{end}}</li>
<li>Asteroid physics: {{if .Config.Physics}}on{{else}}off{{end}}</li>
<li>Asteroids: {{.Config.AsteroidInitial}} to start, at most {{.Config.AsteroidMax}}</li>
</ul>
<p>WASD + Space to fly and shoot. Second ship: IJKL or arrows + M. Q quits.</p>
</body>
</html>
`))

type pageData struct {
	Host   string
	Port   string
	Config config.Simulation
}

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)

	cfg, err := config.Load(config.GetEnv("ARENA_CONFIG", ""))
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}
	cfg.ApplyEnv()

	data := pageData{
		Host:   config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		Port:   config.GetEnv("SSH_PORT", "2222"),
		Config: cfg,
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			log.Error("Render page", "err", err)
		}
	})

	addr := net.JoinHostPort(host, port)
	log.Info("Starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal("Server error", "err", err)
	}
}
