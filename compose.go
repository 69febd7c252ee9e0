package pbirview

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// DefaultWorkflowFile is the workflow linked from the comment footer.
const DefaultWorkflowFile = "pbir-pr-annotate.yml"

// UnnamedVisual labels a visual with no type, title or name.
const UnnamedVisual = "(unnamed visual)"

// Composer renders change groups as a markdown pull request comment.
type Composer struct {
	Repo         string // "owner/repo"
	PRNumber     string
	HeadSHA      string
	WorkflowFile string // Under .github/workflows; DefaultWorkflowFile when empty
	Cols, Rows   int    // Diagram size; RenderLayout defaults when zero
}

// Compose renders the report groups as markdown. stats supplies per-file
// insertion and deletion counts; missing paths count as zero.
func (c *Composer) Compose(reports []ReportGroup, stats map[string]LineStats) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "_List of pages & visuals changed in this PR (#%s)_\n\n\n", c.PRNumber)

	if len(reports) == 0 {
		sb.WriteString("_No mapped PBIR pages or visuals changed in this PR._\n")
	}
	for i, report := range reports {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## Report: _%s_\n\n", report.Report)
		for j, group := range report.Pages {
			if j > 0 {
				sb.WriteString("\n---\n\n")
			}
			c.writePage(&sb, group, stats)
		}
	}

	workflow := c.workflowFile()
	fmt.Fprintf(&sb, "\n\n_This comment is auto-generated by the workflow [%s](%s)_",
		workflow, WorkflowURL(c.Repo, c.HeadSHA, workflow))
	return sb.String()
}

func (c *Composer) writePage(sb *strings.Builder, g *ChangeGroup, stats map[string]LineStats) {
	name := g.Page.Name
	if name == "" {
		name = "(unnamed page)"
	}
	if g.Page.ID != "" {
		fmt.Fprintf(sb, "#### Page: _%s_ :: `%s`\n\n", name, g.Page.ID)
	} else {
		fmt.Fprintf(sb, "#### Page: _%s_\n\n", name)
	}

	if g.PageChanged && g.PagePath != "" {
		fmt.Fprintf(sb, "   - Page definition changed ([%s](%s)) %s\n\n\n",
			PageFileName, PRDiffURL(c.Repo, c.PRNumber, g.PagePath), changeSize(stats[g.PagePath]))
	}

	if len(g.Visuals) == 0 {
		sb.WriteString("   _(No visual layout changes to map for this page)_\n")
		return
	}

	visuals := make([]ChangedVisual, len(g.Visuals))
	copy(visuals, g.Visuals)
	sort.SliceStable(visuals, func(i, j int) bool {
		return strings.ToLower(VisualLabel(visuals[i].Visual)) < strings.ToLower(VisualLabel(visuals[j].Visual))
	})

	sb.WriteString("##### Visuals Changed:\n\n")
	numbered := make([]NumberedVisual, 0, len(visuals))
	for i, cv := range visuals {
		n := i + 1
		fmt.Fprintf(sb, "   %d. <a href =\"%s\" target=\"_blank\">%s</a> %s\n",
			n, PRDiffURL(c.Repo, c.PRNumber, cv.Path), VisualLabel(cv.Visual), changeSize(stats[cv.Path]))
		numbered = append(numbered, NumberedVisual{Number: n, Visual: cv.Visual})
	}

	sb.WriteString("\n_Map of approximate visual size and location, for reference_\n")
	sb.WriteString("   ```text\n")
	for _, line := range RenderLayout(numbered, c.Cols, c.Rows) {
		sb.WriteString("   ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("   ```\n")
}

func (c *Composer) workflowFile() string {
	if c.WorkflowFile == "" {
		return DefaultWorkflowFile
	}
	return c.WorkflowFile
}

func changeSize(s LineStats) string {
	return fmt.Sprintf("_( +%d_ 🟩 _/ -%d_ 🟥 _)_", s.Insertions, s.Deletions)
}

// VisualLabel returns the display label of a visual: its type with its title,
// falling back to its name, then to UnnamedVisual.
func VisualLabel(v Visual) string {
	vtype := strings.TrimSpace(v.VisualType)
	title := strings.TrimSpace(v.Title())
	name := strings.TrimSpace(v.Name)

	switch {
	case title != "" && vtype != "":
		return fmt.Sprintf("%s :: `%s`", vtype, title)
	case title != "":
		return title
	case vtype != "" && name != "":
		return fmt.Sprintf("%s :: `%s`", vtype, name)
	case vtype != "":
		return vtype
	case name != "":
		return name
	}
	return UnnamedVisual
}

// DiffAnchor returns GitHub's anchor for a file in a pull request diff.
// path must be repo-relative with forward slashes.
func DiffAnchor(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:])
}

// PRDiffURL links to a file's diff within a pull request.
func PRDiffURL(repo, pr, path string) string {
	return fmt.Sprintf("https://github.com/%s/pull/%s/files#diff-%s", repo, pr, DiffAnchor(path))
}

// WorkflowURL links to a workflow file at the given revision.
func WorkflowURL(repo, sha, workflowFile string) string {
	segments := strings.Split(workflowFile, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("https://github.com/%s/blob/%s/.github/workflows/%s", repo, sha, strings.Join(segments, "/"))
}
