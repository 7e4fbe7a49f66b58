package domain

import "github.com/holytrinity/portal/internal/minecraft"

// DefaultPort is the standard minecraft server port.
const DefaultPort = 25565

// ServerStatus is the normalized status snapshot, fully replaced each poll.
type ServerStatus struct {
	Online  bool        `json:"online"`
	Players PlayerCount `json:"players"`
	MOTD    MOTD        `json:"motd"`
	Version string      `json:"version"`
	Host    string      `json:"hostname"`
	Port    int         `json:"port"`
}

// PlayerCount is the online/capacity pair of a server.
type PlayerCount struct {
	Online int `json:"online"`
	Max    int `json:"max"`
}

// MOTD is the server message of the day, one entry per line.
type MOTD struct {
	Clean []string `json:"clean"`
}

// NormalizeStatus applies the display defaults to a raw upstream status:
// counts default to 0, the MOTD to an empty list, the version to "Unknown",
// and the hostname to the address that was queried.
func NormalizeStatus(raw *minecraft.RawStatus, queried string) ServerStatus {
	status := ServerStatus{
		Online:  raw.Online,
		Players: PlayerCount{Online: raw.Players.Online, Max: raw.Players.Max},
		MOTD:    MOTD{Clean: raw.MOTD.Clean},
		Version: raw.Version,
		Host:    raw.Hostname,
		Port:    raw.Port,
	}

	if status.MOTD.Clean == nil {
		status.MOTD.Clean = []string{}
	}
	if status.Version == "" {
		status.Version = "Unknown"
	}
	if status.Host == "" {
		status.Host = queried
	}
	if status.Port == 0 {
		status.Port = DefaultPort
	}
	return status
}
