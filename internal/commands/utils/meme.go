// Package utils - /utils meme command
package utils

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
	json "github.com/goccy/go-json"
)

const memeAPIURL = "https://meme-api.com/gimme/memes"

// memeResponse is the subset of the meme API payload the bot uses
type memeResponse struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	PostLink  string `json:"postLink"`
	Subreddit string `json:"subreddit"`
	NSFW      bool   `json:"nsfw"`
}

// createMemeCommand creates the /utils meme subcommand
func createMemeCommand() *discord.Command {
	return discord.NewCommand(
		"meme",
		"Envía un meme aleatorio",
		"utils",
		memeHandler,
	)
}

// memeHandler handles the /utils meme command
func memeHandler(ctx *discord.CommandContext) error {
	if err := ctx.Defer(); err != nil {
		return err
	}

	go func() {
		defer errors.RecoverMiddleware()()

		meme, err := fetchMeme()
		if err != nil {
			ctx.EditReply("❌ No se pudo conseguir un meme, inténtalo más tarde.")
			return
		}

		ctx.EditReplyEmbed(&discordgo.MessageEmbed{
			Title: fmt.Sprintf("😂 %s", meme.Title),
			URL:   meme.PostLink,
			Color: 0xFF4500,
			Image: &discordgo.MessageEmbedImage{
				URL: meme.URL,
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: "r/" + meme.Subreddit,
			},
		})
	}()
	return nil
}

// fetchMeme requests one random meme, retrying once on NSFW results
func fetchMeme() (*memeResponse, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	for attempt := 0; attempt < 2; attempt++ {
		resp, err := client.Get(memeAPIURL)
		if err != nil {
			return nil, err
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("meme API devolvió %d", resp.StatusCode)
		}

		var meme memeResponse
		if err := json.Unmarshal(body, &meme); err != nil {
			return nil, err
		}

		if meme.NSFW {
			continue
		}
		return &meme, nil
	}

	return nil, fmt.Errorf("solo se obtuvieron memes NSFW")
}
