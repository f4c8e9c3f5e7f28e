package cli

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/cbroglie/mustache"
	"github.com/google/uuid"
	"github.com/knoba/confgrid/internal/core/favorites"
	"github.com/knoba/confgrid/internal/core/models"
	"github.com/knoba/confgrid/internal/core/schedule"
	"github.com/knoba/confgrid/internal/core/tags"
	"github.com/spf13/cobra"
)

//go:embed templates/schedule.md.mustache
var markdownTemplate string

var (
	exportDay      string
	exportFormat   string
	exportOutput   string
	exportTemplate string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a day's schedule",
	Long: `Export one conference day to a file.

Formats:
  ics       iCalendar feed, importable into any calendar app
  markdown  Markdown listing, rendered from a mustache template

By default exports to schedule-<day>.<ext> in the current directory.
Use --template to override the built-in markdown template.

Examples:
  confgrid export --day day2 --format ics
  confgrid export --format markdown -o day1.md
  confgrid export --format markdown --template my-schedule.mustache`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDay, "day", schedule.DefaultDay, "Day to export (day1..day4)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "ics", "Output format: ics or markdown")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Custom mustache template for markdown output")
}

func runExport(cmd *cobra.Command, args []string) error {
	day, err := resolveDay(exportDay)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	loc := cfg.Location()
	table := loadTagTable(cfg)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()
	favs := store.Load(day)

	sessions := schedule.Load(day)

	var content, ext string
	switch exportFormat {
	case "ics":
		content, err = renderICS(day, sessions, loc)
		ext = "ics"
	case "markdown", "md":
		content, err = renderMarkdown(day, sessions, favs, table, loc)
		ext = "md"
	default:
		return fmt.Errorf("unknown format %q (expected ics or markdown)", exportFormat)
	}
	if err != nil {
		return err
	}

	outputPath := exportOutput
	if outputPath == "" {
		outputPath = fmt.Sprintf("schedule-%s.%s", day, ext)
	}
	if !filepath.IsAbs(outputPath) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		outputPath = filepath.Join(cwd, outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Exported %s to: %s\n", day, outputPath)
	return nil
}

func renderICS(day string, sessions []models.Session, loc *time.Location) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//confgrid//schedule//EN")

	for _, s := range sessions {
		start, err := s.Start()
		if err != nil {
			continue // bad data never aborts the export
		}
		end, err := s.End()
		if err != nil {
			continue
		}

		ev := cal.AddEvent(uuid.NewString())
		ev.SetDtStampTime(time.Now())
		ev.SetStartAt(start.In(loc))
		ev.SetEndAt(end.In(loc))
		ev.SetSummary(s.Title)
		ev.SetLocation(s.Location)

		var desc []string
		if s.Type != "" {
			desc = append(desc, s.Type)
		}
		if s.Speakers != "" {
			desc = append(desc, "Speakers: "+s.Speakers)
		}
		if len(desc) > 0 {
			ev.SetDescription(strings.Join(desc, "\n"))
		}
	}

	return cal.Serialize(), nil
}

func renderMarkdown(day string, sessions []models.Session, favs []string, table tags.Table, loc *time.Location) (string, error) {
	tmpl := markdownTemplate
	if exportTemplate != "" {
		data, err := os.ReadFile(exportTemplate)
		if err != nil {
			return "", fmt.Errorf("failed to read template: %w", err)
		}
		tmpl = string(data)
	}

	items := make([]map[string]interface{}, 0, len(sessions))
	for _, s := range sessions {
		start, err := s.Start()
		if err != nil {
			continue
		}
		end, err := s.End()
		if err != nil {
			continue
		}

		items = append(items, map[string]interface{}{
			"start":    start.In(loc).Format("15:04"),
			"end":      end.In(loc).Format("15:04"),
			"title":    s.Title,
			"type":     s.Type,
			"location": s.Location,
			"speakers": s.Speakers,
			"favorite": favorites.Contains(favs, s.Title),
			"hasTags":  len(s.Tags) > 0,
			"tagList":  badgeLabels(table, s),
		})
	}

	return mustache.Render(tmpl, map[string]interface{}{
		"day":      day,
		"sessions": items,
	})
}
