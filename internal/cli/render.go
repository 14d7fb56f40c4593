package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mmynk/petlinks/internal/config"
	"github.com/mmynk/petlinks/internal/models"
)

// renderer writes command results in the configured output format.
type renderer struct {
	w      io.Writer
	format string
}

type entityJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ownersJSON struct {
	Dog    entityJSON   `json:"dog"`
	Owners []entityJSON `json:"owners"`
}

type linkJSON struct {
	PersonID int64 `json:"person_id"`
	DogID    int64 `json:"dog_id"`
	IsOwner  bool  `json:"is_owner"`
}

func (r *renderer) owners(dog *models.Dog, owners []*models.Person) error {
	switch r.format {
	case config.OutputJSON:
		out := ownersJSON{
			Dog:    entityJSON{ID: dog.ID, Name: dog.Name},
			Owners: make([]entityJSON, 0, len(owners)),
		}
		for _, o := range owners {
			out.Owners = append(out.Owners, entityJSON{ID: o.ID, Name: o.Name})
		}
		return r.json(out)

	case config.OutputTable:
		t := r.table()
		t.SetTitle(fmt.Sprintf("Owners of %s", dog))
		t.AppendHeader(table.Row{"ID", "Name"})
		for _, o := range owners {
			t.AppendRow(table.Row{o.ID, o.Name})
		}
		t.Render()
		_, _ = fmt.Fprintf(r.w, "(%d owners)\n", len(owners))
		return nil

	default:
		if len(owners) == 0 {
			_, _ = fmt.Fprintf(r.w, "%s has no owners.\n", dog)
			return nil
		}
		for _, o := range owners {
			_, _ = fmt.Fprintf(r.w, "%s is an owner of %s.\n", o, dog)
		}
		return nil
	}
}

func (r *renderer) links(links []*models.PersonDogLink) error {
	switch r.format {
	case config.OutputJSON:
		out := make([]linkJSON, 0, len(links))
		for _, l := range links {
			out = append(out, linkJSON{PersonID: l.PersonID, DogID: l.DogID, IsOwner: l.IsOwner})
		}
		return r.json(out)

	case config.OutputTable:
		t := r.table()
		t.AppendHeader(table.Row{"Person", "Dog", "Owner"})
		for _, l := range links {
			t.AppendRow(table.Row{l.PersonID, l.DogID, l.IsOwner})
		}
		t.Render()
		_, _ = fmt.Fprintf(r.w, "(%d links)\n", len(links))
		return nil

	default:
		if len(links) == 0 {
			_, _ = fmt.Fprintln(r.w, "No links.")
			return nil
		}
		for _, l := range links {
			role := "not an owner"
			if l.IsOwner {
				role = "owner"
			}
			_, _ = fmt.Fprintf(r.w, "person %d -> dog %d (%s)\n", l.PersonID, l.DogID, role)
		}
		return nil
	}
}

func (r *renderer) table() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	return t
}

func (r *renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
