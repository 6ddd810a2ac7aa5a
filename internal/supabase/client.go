package supabase

import (
	"strings"

	"github.com/supabase-community/supabase-go"
)

type Client struct {
	Supabase *supabase.Client
}

func NewClient(supabaseURL, publishableKey string) (*Client, error) {
	client, err := supabase.NewClient(strings.TrimSuffix(supabaseURL, "/"), publishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
	}, nil
}
