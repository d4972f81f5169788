package notifier

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/bostontheory/events/internal/event"
)

// credentials holds the OAuth 1.0a values the Twitter API requires.
type credentials struct {
	APIKey       string `env:"TWITTER_API_KEY"`
	APISecret    string `env:"TWITTER_API_SECRET"`
	AccessToken  string `env:"TWITTER_ACCESS_TOKEN"`
	AccessSecret string `env:"TWITTER_ACCESS_SECRET"`
}

// TwitterNotifier posts seminar announcements to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	var creds credentials
	if err := env.Parse(&creds); err != nil {
		return nil, fmt.Errorf("parsing Twitter credentials: %w", err)
	}

	if creds.APIKey == "" || creds.APISecret == "" || creds.AccessToken == "" || creds.AccessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts tweets for each event
func (n *TwitterNotifier) Notify(events []event.Event) error {
	for i, evt := range events {
		tweet := formatTweet(evt)

		_, _, err := n.client.Statuses.Update(tweet, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for %s on %s: %w", evt.Series, evt.Date, err)
		}

		// Rate limiting: wait between tweets
		if i < len(events)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatTweet formats a seminar as a tweet
func formatTweet(evt event.Event) string {
	tweet := "🎓 New Boston theory talk!\n\n"
	tweet += headline(evt) + "\n"

	if evt.Date != "" {
		when := evt.Date
		if evt.Time != "" {
			when += " at " + evt.Time
		}
		tweet += fmt.Sprintf("📅 %s\n", when)
	}

	if evt.Location != "" {
		tweet += fmt.Sprintf("📍 %s\n", evt.Location)
	}

	if evt.Series != "" {
		tweet += fmt.Sprintf("\n%s\n", evt.Series)
	}

	if link := evt.URL; link != "" {
		tweet += fmt.Sprintf("🔗 %s\n", link)
	} else if evt.SeriesURL != "" {
		tweet += fmt.Sprintf("🔗 %s\n", evt.SeriesURL)
	}

	tweet += "\n#TheoryCS #BostonSeminars"

	// Twitter limit is 280 characters
	if len(tweet) > 280 {
		// Truncate and add ellipsis
		tweet = tweet[:277] + "..."
	}

	return tweet
}

// headline renders the lead line, speaker first when one is known.
func headline(evt event.Event) string {
	if evt.Speaker == "" {
		return evt.Title
	}
	if evt.Affiliation != "" {
		return fmt.Sprintf("%s (%s): %s", evt.Speaker, evt.Affiliation, evt.Title)
	}
	return fmt.Sprintf("%s: %s", evt.Speaker, evt.Title)
}
