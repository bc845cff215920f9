package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"github.com/five82/vidly/internal/catalog"
	"github.com/five82/vidly/internal/view"
)

// ListOptions select one page of the catalog for non-interactive output.
type ListOptions struct {
	ConfigPath string
	Genre      string // id or name; empty or "all" means every genre
	Search     string
	Sort       string // title, genre, stock, rate, liked
	Descending bool
	Page       int
	PageSize   int // zero uses the configured page size
}

// List loads the configured catalog once and writes one page to w.
func List(ctx context.Context, w io.Writer, opts ListOptions) error {
	env, err := setup(opts.ConfigPath)
	if err != nil {
		return err
	}
	defer env.close()

	src, _, closeSrc, err := openSource(env.cfg, env.logger)
	if err != nil {
		return err
	}
	defer closeSrc()

	if opts.PageSize <= 0 {
		opts.PageSize = env.cfg.PageSize
	}
	return listCatalog(ctx, w, src, opts, env.logger)
}

func listCatalog(ctx context.Context, w io.Writer, src catalog.Source, opts ListOptions, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	for _, r := range cat.Rejected {
		logger.Warn("rejected movie", zap.String("id", r.Movie.ID), zap.Error(r.Err))
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = view.DefaultPageSize
	}
	st := view.NewState(cat.Movies, cat.Genres, pageSize)
	if st.IsEmpty() {
		_, err := fmt.Fprintln(w, view.EmptyCollectionMessage)
		return err
	}

	if g := strings.TrimSpace(opts.Genre); g != "" && !strings.EqualFold(g, "all") {
		genre, ok := findGenre(st.Genres(), g)
		if !ok {
			return fmt.Errorf("unknown genre %q", g)
		}
		st.SelectGenre(genre)
	}
	if opts.Search != "" {
		st.Search(opts.Search)
	}
	path := st.Controls().Sort.Path
	if opts.Sort != "" {
		parsed, err := view.ParseSortPath(opts.Sort)
		if err != nil {
			return err
		}
		path = parsed
	}
	// SortBy on the active path flips it, so only switch paths when needed.
	if st.Controls().Sort.Path != path {
		st.SortBy(path)
	}
	if opts.Descending && st.Controls().Sort.Order == view.Ascending {
		st.SortBy(path)
	}
	if opts.Page > 0 {
		st.ChangePage(opts.Page)
	}

	page := st.View()
	controls := st.Controls()

	if _, err := fmt.Fprintln(w, view.PageStatus(page.TotalCount)); err != nil {
		return err
	}
	if len(page.Data) == 0 {
		_, err := fmt.Fprintln(w, view.EmptyPageMessage)
		return err
	}

	rows := make([][]string, 0, len(page.Data))
	for _, m := range page.Data {
		rows = append(rows, []string{
			m.Title,
			m.Genre.Name,
			strconv.Itoa(m.NumberInStock),
			strconv.FormatFloat(m.DailyRentalRate, 'f', -1, 64),
			view.LikeIcon(m.Liked),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(view.Headers(controls.Sort)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			return style
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	if pages := st.PageCount(); pages > 1 {
		if _, err := fmt.Fprintf(w, "Page %d of %d\n", controls.CurrentPage, pages); err != nil {
			return err
		}
	}
	return nil
}

func findGenre(genres []catalog.Genre, key string) (catalog.Genre, bool) {
	for _, g := range genres {
		if g.IsAll() {
			continue
		}
		if g.ID == key || strings.EqualFold(g.Name, key) {
			return g, true
		}
	}
	return catalog.Genre{}, false
}
