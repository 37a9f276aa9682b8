package lifecycle

import "fmt"

// UnitName is the fixed systemd unit the controller manages.
const UnitName = "gridagent.service"

// Definition describes the agent's unit. It is derived entirely from the
// install inputs and the environment, so it is never persisted by the
// controller: the supervisor's copy is the only one.
type Definition struct {
	WorkDir    string // agent working directory (marker and state files live here)
	Launcher   string // absolute path of the runtime launcher
	Entrypoint string // agent entry point, relative to WorkDir
	SecretKey  string // passed to the agent as its launch argument
	BaseURL    string // optional API_BASE_URL override for the agent
}

// Render produces the unit file contents. The agent is restarted
// unconditionally with a 10s backoff and logs to the journal.
func (d Definition) Render() []byte {
	env := ""
	if d.BaseURL != "" {
		env = "Environment=API_BASE_URL=" + d.BaseURL + "\n"
	}

	return fmt.Appendf(nil, `[Unit]
Description=grid compute agent
After=network-online.target docker.service
Wants=network-online.target

[Service]
Type=simple
WorkingDirectory=%s
%sExecStart=%s run %s %s
Restart=always
RestartSec=10
StandardOutput=journal
StandardError=journal

[Install]
WantedBy=multi-user.target
`, d.WorkDir, env, d.Launcher, d.Entrypoint, d.SecretKey)
}
