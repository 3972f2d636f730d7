package view

import (
	"testing"

	"github.com/musantuli/portfolio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	ids := make([]string, 0, 5)
	for _, s := range Sections() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"home", "about", "projects", "certificates", "contact"}, ids)
}

func TestActiveSection(t *testing.T) {
	boxes := []SectionBox{
		{ID: "home", Top: 0, Height: 800},
		{ID: "about", Top: 800, Height: 600},
		{ID: "projects", Top: 1400, Height: 1000},
	}

	tests := []struct {
		name    string
		scrollY int
		want    string
	}{
		{name: "top of page", scrollY: 0, want: "home"},
		{name: "offset pushes into next section", scrollY: 700, want: "about"},
		{name: "just before boundary", scrollY: 699, want: "home"},
		{name: "last section", scrollY: 2000, want: "projects"},
		{name: "past end", scrollY: 2300, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActiveSection(boxes, tt.scrollY))
		})
	}

	assert.Equal(t, "", ActiveSection(nil, 0))
}

func TestDialog(t *testing.T) {
	var d Dialog[types.Certificate]
	assert.False(t, d.IsOpen())
	_, ok := d.Selected()
	assert.False(t, ok)

	d.Open(types.Certificate{ID: 1, Title: "Current Certification"})
	require.True(t, d.IsOpen())
	got, ok := d.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, got.ID)

	d.Open(types.Certificate{ID: 2})
	got, _ = d.Selected()
	assert.Equal(t, 2, got.ID)

	d.Close()
	assert.False(t, d.IsOpen())
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 15, 2024", FormatDate("2024-01-15", false))
	assert.Equal(t, "January 15, 2024", FormatDate("2024-01-15", true))
	assert.Equal(t, "Mar 4, 2024", FormatDate("2024-03-04T10:20:30Z", false))
	assert.Equal(t, "soon", FormatDate("soon", false))
	assert.Equal(t, "", FormatDate("", true))
}

func TestTopTopics(t *testing.T) {
	topics := []string{"go", "api", "react", "sql"}

	assert.Equal(t, []string{"go", "api", "react"}, TopTopics(topics, 3))
	assert.Equal(t, topics, TopTopics(topics, 10))
	assert.Nil(t, TopTopics(topics, 0))
	assert.Empty(t, TopTopics(nil, 3))
}
