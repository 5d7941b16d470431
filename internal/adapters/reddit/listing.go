package reddit

import (
	"github.com/mikey/tacticus-code-watch/internal/core"
	"github.com/mikey/tacticus-code-watch/internal/utils"
)

// listing mirrors the Reddit listing JSON envelope. Both the OAuth API and
// the public new.json endpoint return the same shape.
type listing struct {
	Data struct {
		Children []listingChild `json:"children"`
	} `json:"data"`
}

type listingChild struct {
	Kind string      `json:"kind"`
	Data listingPost `json:"data"`
}

type listingPost struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Selftext      string  `json:"selftext"`
	LinkFlairText *string `json:"link_flair_text"`
	Author        string  `json:"author"`
	Subreddit     string  `json:"subreddit"`
}

// normalizePosts converts listing children into core posts. Link posts
// (kind != t3) are skipped; missing optional fields get their sentinel
// values so the core never sees an absent field.
func normalizePosts(l *listing, text *utils.TextProcessor, maxBodySize int) []core.Post {
	posts := make([]core.Post, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		if child.Kind != "t3" {
			continue
		}
		data := child.Data

		flair := ""
		if data.LinkFlairText != nil {
			flair = *data.LinkFlairText
		}

		author := data.Author
		if author == "" {
			author = core.UnknownAuthor
		}

		posts = append(posts, core.Post{
			ID:        data.ID,
			Title:     text.SanitizeUTF8(data.Title),
			Body:      text.ProcessText(data.Selftext, maxBodySize),
			Flair:     flair,
			Author:    author,
			Subreddit: data.Subreddit,
		})
	}
	return posts
}
