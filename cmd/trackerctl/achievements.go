package main

import (
	"context"
	"flag"
	"fmt"

	"gametracker/internal/app/tracker"
	"gametracker/internal/view"
)

func (a *app) achievements(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	fs := newFlagSet("achievements " + args[0])
	gameID := fs.String("game", "", "game id")
	id := fs.String("id", "", "achievement id")
	title := fs.String("title", "", "title")
	description := fs.String("description", "", "description")
	date := fs.String("date", "", "date achieved, YYYY-MM-DD (default today)")
	keyword := fs.String("keyword", "", "search keyword")
	fs.BoolVar(&a.yes, "yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args[1:]); err != nil || *gameID == "" {
		return errUsage
	}
	set := setFlags(fs)

	if _, err := a.requireUser(ctx); err != nil {
		return err
	}

	v := view.NewAchievementsView(a.api.Games, a.api.Achievements, a, nil)
	if err := v.SelectGame(ctx, *gameID); err != nil {
		return viewError(v.State().Err(), err)
	}

	switch args[0] {
	case "list":
	case "search":
		if *keyword == "" {
			return errUsage
		}
		if err := v.Search(ctx, *keyword); err != nil {
			return viewError(v.State().Err(), err)
		}
	case "add":
		v.OpenCreate()
		form := v.Dialog().Form()
		form.Title, form.Description = *title, *description
		if set["date"] {
			form.DateAchieved = *date
		}
		v.SetForm(form)
		if err := v.Submit(ctx); err != nil {
			return viewError(v.State().Err(), err)
		}
	case "edit":
		current, ok := findAchievement(v.State().Items(), *id)
		if !ok {
			return fmt.Errorf("achievement %q not found", *id)
		}
		v.OpenEdit(current)
		form := v.Dialog().Form()
		if set["title"] {
			form.Title = *title
		}
		if set["description"] {
			form.Description = *description
		}
		if set["date"] {
			form.DateAchieved = *date
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

	return a.printAchievements(v.State().Items())
}

func (a *app) printAchievements(list []tracker.Achievement) error {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No achievements found.")
		return nil
	}
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tDATE\tTITLE\tDESCRIPTION")
	for _, x := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", x.ID, x.DateAchieved.Format(tracker.DateLayout), x.Title, dash(x.Description))
	}
	return tw.Flush()
}

func findAchievement(list []tracker.Achievement, id string) (tracker.Achievement, bool) {
	for _, x := range list {
		if x.ID == id {
			return x, true
		}
	}
	return tracker.Achievement{}, false
}

// setFlags reports which flags were given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
