package main

import (
	"context"
	"fmt"

	"gametracker/internal/app/tracker"
	"gametracker/internal/view"
)

func (a *app) games(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	if _, err := a.requireUser(ctx); err != nil {
		return err
	}

	v := view.NewGamesView(a.api.Games, a)
	if err := v.Load(ctx); err != nil {
		return viewError(v.State().Err(), err)
	}

	fs := newFlagSet("games " + args[0])
	id := fs.String("id", "", "game id")
	name := fs.String("name", "", "game name")
	genre := fs.String("genre", "", "genre")
	platform := fs.String("platform", "", "platform")
	fs.BoolVar(&a.yes, "yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args[1:]); err != nil {
		return errUsage
	}
	set := setFlags(fs)

	switch args[0] {
	case "list":
	case "add":
		v.OpenCreate()
		v.SetForm(tracker.GameInput{Name: *name, Genre: *genre, Platform: *platform})
		if err := v.Submit(ctx); err != nil {
			return viewError(v.State().Err(), err)
		}
	case "edit":
		game, ok := findGame(v.State().Items(), *id)
		if !ok {
			return fmt.Errorf("game %q not found", *id)
		}
		v.OpenEdit(game)
		form := v.Dialog().Form()
		if set["name"] {
			form.Name = *name
		}
		if set["genre"] {
			form.Genre = *genre
		}
		if set["platform"] {
			form.Platform = *platform
		}
		v.SetForm(form)
		if err := v.Submit(ctx); err != nil {
			return viewError(v.State().Err(), err)
		}
	case "rm":
		if *id == "" {
			return errUsage
		}
		deleted, err := v.Delete(ctx, *id)
		if err != nil {
			return viewError(v.State().Err(), err)
		}
		if !deleted {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
	default:
		return errUsage
	}

	return a.printGames(v.State().Items())
}

func (a *app) printGames(games []tracker.Game) error {
	if len(games) == 0 {
		fmt.Fprintln(a.out, "No games yet.")
		return nil
	}
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME\tGENRE\tPLATFORM")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.ID, g.Name, dash(g.Genre), dash(g.Platform))
	}
	return tw.Flush()
}

func findGame(games []tracker.Game, id string) (tracker.Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return tracker.Game{}, false
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
