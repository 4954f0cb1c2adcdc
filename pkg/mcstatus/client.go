// Package mcstatus queries Minecraft servers via the Server List Ping
// protocol and exposes a compact status snapshot for the bot.
package mcstatus

import (
	"fmt"
	"time"

	"github.com/dreamscached/minequery/v2"
)

// DefaultPort is the standard Minecraft Java Edition server port
const DefaultPort = 25565

// Status is the snapshot the bot renders into a status embed
type Status struct {
	Online        bool
	Version       string
	MOTD          string
	OnlinePlayers int
	MaxPlayers    int
	Sample        []string // up to 10 player nicknames
	Latency       time.Duration
}

// Client pings Minecraft servers with a bounded timeout
type Client struct {
	pinger *minequery.Pinger
}

// New creates a client with the given ping timeout
func New(timeout time.Duration) *Client {
	return &Client{
		pinger: minequery.NewPinger(minequery.WithTimeout(timeout)),
	}
}

// Ping queries the server. A server that does not answer is reported as
// offline with a nil error; only malformed input is an error.
func (c *Client) Ping(host string, port int) (*Status, error) {
	if host == "" {
		return nil, fmt.Errorf("mcstatus: host vacío")
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("mcstatus: puerto inválido %d", port)
	}

	started := time.Now()
	res, err := c.pinger.Ping17(host, port)
	if err != nil {
		return &Status{Online: false}, nil
	}

	status := &Status{
		Online:        true,
		Version:       res.VersionName,
		MOTD:          res.Description.String(),
		OnlinePlayers: res.OnlinePlayers,
		MaxPlayers:    res.MaxPlayers,
		Latency:       time.Since(started),
	}

	for i, player := range res.SamplePlayers {
		if i >= 10 {
			break
		}
		status.Sample = append(status.Sample, player.Nickname)
	}

	return status, nil
}
