package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/cosmic-rhythm/internal/domain/advisory"
	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
	"github.com/yanqian/cosmic-rhythm/internal/infra/chart"
)

func biorhythmCmd(svc biorhythm.Service) *cobra.Command {
	var birth, date string
	var before, after int
	var asRange bool

	c := &cobra.Command{
		Use:   "biorhythm",
		Short: "Biorhythm reading for a date, or a window around today with --range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asRange {
				out, err := svc.Range(cmd.Context(), biorhythm.RangeRequest{
					BirthDate:  birth,
					DaysBefore: before,
					DaysAfter:  after,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			reading, err := svc.Date(cmd.Context(), birth, date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), reading)
		},
	}

	c.Flags().StringVarP(&birth, "birth", "b", "", "Birth date, YYYY-MM-DD (required)")
	c.Flags().StringVarP(&date, "date", "d", "", "Target date, YYYY-MM-DD (defaults to today)")
	c.Flags().BoolVar(&asRange, "range", false, "Print a window of readings instead of one day")
	c.Flags().IntVar(&before, "days-before", 10, "Days before today when --range is set")
	c.Flags().IntVar(&after, "days-after", 20, "Days after today when --range is set")
	_ = c.MarkFlagRequired("birth")
	return c
}

func forecastCmd(svc biorhythm.Service) *cobra.Command {
	var birth, start string

	c := &cobra.Command{
		Use:   "forecast",
		Short: "Compact multi-day biorhythm forecast",
		RunE: func(cmd *cobra.Command, _ []string) error {
			days, err := svc.Forecast(cmd.Context(), birth, start)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, d := range days {
				fmt.Fprintf(w, "%s  %-9s  P %+.3f  E %+.3f  I %+.3f  score %5.1f\n",
					d.Date, d.Weekday, d.Physical, d.Emotional, d.Intellectual, d.OverallScore)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&birth, "birth", "b", "", "Birth date, YYYY-MM-DD (required)")
	c.Flags().StringVarP(&start, "start", "s", "", "First forecast day (defaults to today)")
	_ = c.MarkFlagRequired("birth")
	return c
}

func chartCmd(svc biorhythm.Service) *cobra.Command {
	var birth, out string
	var before, after int

	c := &cobra.Command{
		Use:   "chart",
		Short: "Render a biorhythm chart as PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			series, err := svc.Range(cmd.Context(), biorhythm.RangeRequest{
				BirthDate:  birth,
				DaysBefore: before,
				DaysAfter:  after,
			})
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := chart.RenderBiorhythm(w, series); err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "chart written to %s\n", out)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&birth, "birth", "b", "", "Birth date, YYYY-MM-DD (required)")
	c.Flags().StringVarP(&out, "out", "o", "biorhythm.png", "Output file, - for stdout")
	c.Flags().IntVar(&before, "days-before", 10, "Days before today")
	c.Flags().IntVar(&after, "days-after", 20, "Days after today")
	_ = c.MarkFlagRequired("birth")
	return c
}

func mayaCmd(svc maya.Service) *cobra.Command {
	var date string
	var before, after int
	var asRange bool

	c := &cobra.Command{
		Use:   "maya",
		Short: "Maya calendar reading for a date, or a window around today with --range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asRange {
				out, err := svc.Range(cmd.Context(), maya.RangeRequest{DaysBefore: before, DaysAfter: after})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			reading, err := svc.Date(cmd.Context(), date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), reading)
		},
	}

	c.Flags().StringVarP(&date, "date", "d", "", "Target date, YYYY-MM-DD (defaults to today)")
	c.Flags().BoolVar(&asRange, "range", false, "Print a window of readings instead of one day")
	c.Flags().IntVar(&before, "days-before", maya.DefaultDaysBefore, "Days before today when --range is set")
	c.Flags().IntVar(&after, "days-after", maya.DefaultDaysAfter, "Days after today when --range is set")
	return c
}

func birthCmd(svc maya.Service) *cobra.Command {
	var birth string

	c := &cobra.Command{
		Use:   "birth",
		Short: "Maya birth chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := svc.BirthInfo(cmd.Context(), birth)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}

	c.Flags().StringVarP(&birth, "birth", "b", "", "Birth date, YYYY-MM-DD (required)")
	_ = c.MarkFlagRequired("birth")
	return c
}

func dressCmd(svc advisory.Service) *cobra.Command {
	var birth, date string
	var before, after int
	var asRange bool

	c := &cobra.Command{
		Use:   "dress",
		Short: "Dress colour and food advice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asRange {
				out, err := svc.Range(cmd.Context(), advisory.RangeRequest{
					BirthDate:  birth,
					DaysBefore: before,
					DaysAfter:  after,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			day, err := svc.Date(cmd.Context(), date, birth)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), day)
		},
	}

	c.Flags().StringVarP(&birth, "birth", "b", "", "Birth date for personal advice (optional)")
	c.Flags().StringVarP(&date, "date", "d", "", "Target date, YYYY-MM-DD (defaults to today)")
	c.Flags().BoolVar(&asRange, "range", false, "Print a window of advice instead of one day")
	c.Flags().IntVar(&before, "days-before", advisory.DefaultDaysBefore, "Days before today when --range is set")
	c.Flags().IntVar(&after, "days-after", advisory.DefaultDaysAfter, "Days after today when --range is set")
	return c
}
