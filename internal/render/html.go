package render

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/mad4j/rustedbytes-pages/internal/domain"
)

// htmlRow is the per-project view model for the HTML table.
type htmlRow struct {
	Name        string
	HTMLURL     string
	Description string
	Release     *htmlReleaseCell
	Crate       *htmlCrateCell
}

type htmlReleaseCell struct {
	TagName string
	URL     string
	Date    string
}

type htmlCrateCell struct {
	Version string
	URL     string
}

type htmlPage struct {
	Title       string
	Description string
	HeaderEmoji string
	User        string
	Rows        []htmlRow
	UpdatedAt   string
}

// pageTemplate is the full standalone HTML page. text/template is used
// deliberately: descriptions are rendered verbatim, matching the table
// semantics of the markdown form.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 2rem;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 12px;
            box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
            overflow: hidden;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 3rem 2rem;
            text-align: center;
        }

        header h1 {
            font-size: 2.5rem;
            margin-bottom: 0.5rem;
            font-weight: 700;
        }

        header p {
            font-size: 1.2rem;
            opacity: 0.95;
        }

        .content {
            padding: 2rem;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            margin-top: 1rem;
        }

        th {
            background: #667eea;
            color: white;
            padding: 1rem;
            text-align: left;
            font-weight: 600;
            border-bottom: 2px solid #5568d3;
        }

        td {
            padding: 1rem;
            border-bottom: 1px solid #e9ecef;
        }

        tr:hover {
            background: #f8f9fa;
        }

        a {
            color: #667eea;
            text-decoration: none;
        }

        a:hover {
            color: #764ba2;
            text-decoration: underline;
        }

        .no-data {
            color: #6c757d;
            font-style: italic;
        }

        footer {
            padding: 2rem;
            text-align: center;
            color: #6c757d;
            background: #f8f9fa;
            border-top: 1px solid #e9ecef;
        }

        footer a {
            color: #667eea;
            font-weight: 600;
        }

        .update-time {
            font-size: 0.9rem;
            color: #6c757d;
            margin-top: 0.5rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>{{if .HeaderEmoji}}{{.HeaderEmoji}} {{end}}{{.Title}}</h1>
            <p>{{.Description}}</p>
        </header>

        <div class="content">
            <h2>Projects</h2>
            <table>
                <thead>
                    <tr>
                        <th>Project</th>
                        <th>Description</th>
                        <th>Latest Release</th>
                        <th>Crates.io</th>
                    </tr>
                </thead>
                <tbody>
{{- range .Rows}}
                    <tr>
                        <td><a href="{{.HTMLURL}}"><strong>{{.Name}}</strong></a></td>
                        <td>{{.Description}}</td>
                        <td>{{with .Release}}<a href="{{.URL}}">{{.TagName}}</a> ({{.Date}}){{else}}<span class="no-data">No releases</span>{{end}}</td>
                        <td>{{with .Crate}}<a href="{{.URL}}">{{.Version}}</a>{{else}}<span class="no-data">Not published</span>{{end}}</td>
                    </tr>
{{- end}}
                </tbody>
            </table>
        </div>

        <footer>
            <p>
                Generated from <a href="https://github.com/{{.User}}" target="_blank">@{{.User}}</a> GitHub repositories
            </p>
            <p class="update-time">Last updated: {{.UpdatedAt}}</p>
        </footer>
    </div>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("page").Parse(pageTemplate))

// HTML renders the project table as a standalone styled page. The project
// list is expected to be sorted by name.
func HTML(projects []*domain.Project, cfg domain.PageConfig, user string, generatedAt time.Time) (string, error) {
	page := htmlPage{
		Title:       cfg.Title,
		Description: cfg.Description,
		HeaderEmoji: cfg.HeaderEmoji,
		User:        user,
		Rows:        make([]htmlRow, 0, len(projects)),
		UpdatedAt:   generatedAt.UTC().Format(timestampLayout) + " UTC",
	}
	for _, p := range projects {
		row := htmlRow{
			Name:        p.Name,
			HTMLURL:     p.HTMLURL,
			Description: p.Description,
		}
		if row.Description == "" {
			row.Description = noDescription
		}
		if p.Release != nil {
			row.Release = &htmlReleaseCell{
				TagName: p.Release.TagName,
				URL:     p.Release.HTMLURL,
				Date:    formatDate(p.Release.PublishedAt),
			}
		}
		if p.Crate != nil {
			row.Crate = &htmlCrateCell{
				Version: p.Crate.NewestVersion,
				URL:     crateURL(p.Crate.Name),
			}
		}
		page.Rows = append(page.Rows, row)
	}

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("failed to render HTML page: %w", err)
	}
	return buf.String(), nil
}
