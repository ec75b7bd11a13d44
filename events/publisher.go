// Package events publishes fire-and-forget notifications over NATS. The
// publisher is nil-safe so deploys without a broker just skip it.
package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/Savin-AS94/hw05-final/models"
)

type Publisher struct {
	nc *nats.Conn
}

// Connect returns nil when url is empty.
func Connect(url string) *Publisher {
	if url == "" {
		return nil
	}
	nc, err := nats.Connect(url)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("nats unavailable, events disabled")
		return nil
	}
	log.Info().Str("url", url).Msg("nats connected")
	return &Publisher{nc: nc}
}

type PostCreated struct {
	PostID   uint      `json:"post_id"`
	AuthorID uint      `json:"author_id"`
	Username string    `json:"username"`
	PubDate  time.Time `json:"pub_date"`
}

type UserFollowed struct {
	UserID   uint `json:"user_id"`
	AuthorID uint `json:"author_id"`
}

func (p *Publisher) PostCreated(post *models.Post, username string) {
	p.publish("post.created", PostCreated{
		PostID:   post.ID,
		AuthorID: post.AuthorID,
		Username: username,
		PubDate:  post.PubDate,
	})
}

func (p *Publisher) UserFollowed(userID, authorID uint) {
	p.publish("user.followed", UserFollowed{UserID: userID, AuthorID: authorID})
}

func (p *Publisher) publish(subject string, payload interface{}) {
	if p == nil || p.nc == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := p.nc.Publish(subject, raw); err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("event publish failed")
	}
}
