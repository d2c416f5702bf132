package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/disiqueira/gotree/v3"
	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/jobtracker/internal/client/explorer"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/services"
	"github.com/dmitrijs2005/jobtracker/internal/client/tree"
	"github.com/dmitrijs2005/jobtracker/internal/timex"
)

func age(t timex.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t.Time)
}

func renderApplications(apps []models.Application) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tPOSITION\tSTATUS\tDOCS\tCREATED")
	for _, app := range apps {
		position := "-"
		if app.Position != nil && *app.Position != "" {
			position = *app.Position
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			app.ID, app.CompanyName, position, app.Status, app.DocumentCount, age(app.CreatedAt))
	}
	_ = w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

// renderListing prints folders first, then files. Selected items are
// marked with "*", unindexed files with "(not indexed)".
func renderListing(folders []models.Folder, files []models.Document, sel explorer.Selection) string {
	if len(folders) == 0 && len(files) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, f := range folders {
		mark := " "
		if sel.Has(tree.Ref{Kind: tree.KindFolder, ID: f.ID}) {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t#%d\t%s/\t\n", mark, f.ID, f.Name)
	}
	for _, d := range files {
		mark := " "
		if sel.Has(tree.Ref{Kind: tree.KindFile, ID: d.ID}) {
			mark = "*"
		}
		note := ""
		if !d.Indexed {
			note = "(not indexed)"
		}
		fmt.Fprintf(w, "%s\t#%d\t%s\t%s\n", mark, d.ID, d.Filename, note)
	}
	_ = w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

// renderTree draws the application forest. Children are shown for
// expanded nodes, or for every node when all is set. The cursor is marked
// with "<".
func renderTree(s explorer.State, all bool) string {
	root := gotree.New("applications")
	for _, n := range s.Tree {
		addNode(root, n, s.Cursor, all)
	}
	return strings.TrimRight(root.Print(), "\n")
}

func addNode(parent gotree.Tree, n *tree.Node, cur explorer.Cursor, all bool) {
	label := fmt.Sprintf("%s (#%d)", n.Name(), n.ID())
	atCursor := false
	switch n.Kind {
	case tree.KindApplication:
		label = fmt.Sprintf("%s [%s] (#%d)", n.Name(), n.Application.Status, n.ID())
		atCursor = cur.ApplicationID == n.ID() && cur.FolderID == nil
	case tree.KindFolder:
		label = fmt.Sprintf("%s/ (#%d)", n.Name(), n.ID())
		atCursor = cur.FolderID != nil && *cur.FolderID == n.ID()
	case tree.KindFile:
	}

	open := all || n.Expanded
	if len(n.Children) > 0 && !open {
		label += " +"
	}
	if atCursor {
		label += " <"
	}

	t := parent.Add(label)
	if !open {
		return
	}
	for _, c := range n.Children {
		addNode(t, c, cur, all)
	}
}

func renderDetail(d *models.ApplicationDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Documents (%d):\n", len(d.Documents))
	for _, doc := range d.Documents {
		kind := "-"
		if doc.DocType != nil {
			kind = *doc.DocType
		}
		fmt.Fprintf(&b, "  #%d %s [%s]\n", doc.ID, doc.Filename, kind)
	}
	fmt.Fprintf(&b, "Status history (%d):\n", len(d.StatusHistory))
	for _, h := range d.StatusHistory {
		from := "-"
		if h.OldStatus != nil {
			from = *h.OldStatus
		}
		line := fmt.Sprintf("  %s → %s (%s)", from, h.NewStatus, age(h.ChangedAt))
		if h.Notes != nil && *h.Notes != "" {
			line += ": " + *h.Notes
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderReport(r *models.Report) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(r.Columns, "\t")))
	cells := make([]string, len(r.Columns))
	for _, row := range r.Rows {
		for i, col := range r.Columns {
			cells[i] = services.FormatCell(row[col])
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()
	fmt.Fprintf(&b, "%d row(s)", r.TotalRows)
	return b.String()
}
