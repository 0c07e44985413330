package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	leitner "github.com/dra1n/leitner-box"
)

// load opens the configured store and reads the box from it.
func (a *app) load(cmd *cobra.Command) (*leitner.Box[Card], error) {
	s, err := a.openStore()
	if err != nil {
		return nil, err
	}
	box, err := s.Load(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("%w (run \"leitner init\" first?)", err)
	}
	return box, nil
}

func (a *app) save(cmd *cobra.Command, box *leitner.Box[Card]) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	return s.Save(cmd.Context(), box)
}

func (a *app) initCmd() *cobra.Command {
	var (
		repetitions int
		lesson      int
		force       bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			if s.Exists() && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", s.Path())
			}

			box, err := leitner.NewBox(leitner.BoxConfig[Card]{
				Repetitions:   leitner.Repetitions(repetitions),
				CurrentLesson: lesson,
			})
			if err != nil {
				return err
			}
			if err := s.Save(cmd.Context(), box); err != nil {
				return err
			}

			a.logger.Debug("box created",
				zap.String("path", s.Path()),
				zap.Int("repetitions", box.Repetitions()),
				zap.Int("lessons", box.Count()))
			fmt.Fprintf(cmd.OutOrStdout(), "created %s: %d repetitions, %d lessons\n",
				s.Path(), box.Repetitions(), box.Count())
			return nil
		},
	}
	cmd.Flags().IntVarP(&repetitions, "repetitions", "r", leitner.DefaultRepetitions, "reviews per card before it leaves the lesson ring")
	cmd.Flags().IntVar(&lesson, "lesson", 0, "initial current lesson")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing box")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <front> [back]",
		Short: "Add a card to the unknown deck",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := a.load(cmd)
			if err != nil {
				return err
			}

			card := Card{ID: uuid.NewString(), Front: args[0]}
			if len(args) > 1 {
				card.Back = args[1]
			}
			if err := a.save(cmd, box.AddToUnknown(card)); err != nil {
				return err
			}

			a.logger.Debug("card added", zap.String("id", card.ID))
			fmt.Fprintln(cmd.OutOrStdout(), card.ID)
			return nil
		},
	}
}

func (a *app) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "move <unknown|learned|lessons> <id-or-front>",
		Short:     "Move a card to another deck",
		Long:      "Move a card to the end of a deck. Cards moved to \"lessons\" land in the current lesson's slot.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"unknown", "learned", "lessons"},
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := leitner.ParseDeck(args[0])
			if err != nil {
				return err
			}
			box, err := a.load(cmd)
			if err != nil {
				return err
			}

			moved := box.MoveTo(deck, matchCard(args[1]))
			if moved == box {
				if _, ok := box.CardInfo(matchCard(args[1])); ok {
					return fmt.Errorf("current lesson %d is outside the lesson ring [0, %d)", box.CurrentLesson(), box.Count())
				}
				return fmt.Errorf("card %q not found", args[1])
			}
			if err := a.save(cmd, moved); err != nil {
				return err
			}

			a.logger.Debug("card moved", zap.String("card", args[1]), zap.Stringer("deck", deck))
			fmt.Fprintf(cmd.OutOrStdout(), "moved %q to %s\n", args[1], deck)
			return nil
		},
	}
}

func (a *app) dueCmd() *cobra.Command {
	var lesson int
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List the cards due in a lesson",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := a.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("lesson") {
				box = box.WithCurrentLesson(lesson)
			}

			cards := box.CardsForCurrentLesson()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "lesson %d: %d due\n", box.CurrentLesson(), len(cards))
			for _, c := range cards {
				last := ""
				if box.IsLastLessonForCard(byID(c.ID)) {
					last = "last review"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Front, c.Back, last)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&lesson, "lesson", 0, "lesson to list (default: the current lesson)")
	return cmd
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <id-or-front>",
		Short: "Show which deck holds a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := a.load(cmd)
			if err != nil {
				return err
			}
			id := matchCard(args[0])
			info, ok := box.CardInfo(id)
			if !ok {
				return fmt.Errorf("card %q not found", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "deck: %s\n", info.Deck)
			if info.RepetitionsLeft != nil {
				fmt.Fprintf(out, "repetitions left: %d\n", *info.RepetitionsLeft)
				fmt.Fprintf(out, "last review today: %t\n", box.IsLastLessonForCard(id))
			}
			return nil
		},
	}
}

func (a *app) lessonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lesson [n]",
		Short: "Print or set the current lesson",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := a.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), box.CurrentLesson())
				return nil
			}

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid lesson %q: %w", args[0], err)
			}
			if n < 0 || n >= box.Count() {
				return fmt.Errorf("lesson %d outside [0, %d)", n, box.Count())
			}
			if err := a.save(cmd, box.WithCurrentLesson(n)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "current lesson: %d\n", n)
			return nil
		},
	}
}

func (a *app) nextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Advance to the next lesson, wrapping around the ring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := a.load(cmd)
			if err != nil {
				return err
			}
			n := (box.CurrentLesson() + 1) % box.Count()
			if err := a.save(cmd, box.WithCurrentLesson(n)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "current lesson: %d\n", n)
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Summarize the box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := a.load(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "repetitions\t%d\n", box.Repetitions())
			fmt.Fprintf(w, "current lesson\t%d of %d\n", box.CurrentLesson(), box.Count())
			fmt.Fprintf(w, "unknown\t%d\n", len(box.Unknown()))
			fmt.Fprintf(w, "learned\t%d\n", len(box.Learned()))
			for i, l := range box.Lessons() {
				if len(l.Cards) == 0 {
					continue
				}
				fmt.Fprintf(w, "lesson %d\t%d\trepeats on %v\n", i, len(l.Cards), l.RepeatOn)
			}
			return w.Flush()
		},
	}
}
