package utils

import (
	"testing"

	"github.com/Dosada05/pairing-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates(t *testing.T) {
	ptr := func(v int) *int { return &v }

	cases := []struct {
		name string
		text string
		want []models.PlayerCandidate
	}{
		{
			name: "newline separated with ratings",
			text: "Alice 2100\nBob\nCarol 1850",
			want: []models.PlayerCandidate{
				{ID: "Alice", Rating: ptr(2100)},
				{ID: "Bob"},
				{ID: "Carol", Rating: ptr(1850)},
			},
		},
		{
			name: "comma and semicolon separators",
			text: "Alice 2100, Bob; Carol 1850",
			want: []models.PlayerCandidate{
				{ID: "Alice", Rating: ptr(2100)},
				{ID: "Bob"},
				{ID: "Carol", Rating: ptr(1850)},
			},
		},
		{
			name: "multiword name keeps trailing rating",
			text: "Magnus Carlsen 2830\nJose Raul Capablanca",
			want: []models.PlayerCandidate{
				{ID: "Magnus Carlsen", Rating: ptr(2830)},
				{ID: "Jose Raul Capablanca"},
			},
		},
		{
			name: "negative trailing number is part of the name",
			text: "Bot -5",
			want: []models.PlayerCandidate{
				{ID: "Bot -5"},
			},
		},
		{
			name: "blank entries are skipped",
			text: "\n ,  ;\nAlice\n\n",
			want: []models.PlayerCandidate{
				{ID: "Alice"},
			},
		},
		{
			name: "empty text",
			text: "",
			want: []models.PlayerCandidate{},
		},
		{
			name: "single numeric token is a name",
			text: "1850",
			want: []models.PlayerCandidate{
				{ID: "1850"},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ParseCandidates(c.text)
			require.Len(t, got, len(c.want))
			for i := range c.want {
				assert.Equal(t, c.want[i].ID, got[i].ID)
				if c.want[i].Rating == nil {
					assert.Nil(t, got[i].Rating)
				} else {
					require.NotNil(t, got[i].Rating)
					assert.Equal(t, *c.want[i].Rating, *got[i].Rating)
				}
			}
		})
	}
}
