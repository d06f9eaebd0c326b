package scaffold

import (
	"bytes"
	"path/filepath"
	"text/template"

	"github.com/NielsdaWheelz/stackup/internal/fs"
)

// ReadmeFile is the generated file name at the project root.
const ReadmeFile = "README.md"

// ReadmeData is the input to the README template.
// URLs are the raw strings the user typed, not their normalized form.
type ReadmeData struct {
	ProjectName string
	FrontendURL string
	BackendURL  string
	FrontendDir string
	BackendDir  string
}

var readmeTemplate = template.Must(template.New("readme").Parse(`# {{.ProjectName}}

A full-stack project assembled from two GitHub repositories.

## Structure

` + "```" + `
{{.ProjectName}}/
├── {{.FrontendDir}}/   # {{.FrontendURL}}
└── {{.BackendDir}}/    # {{.BackendURL}}
` + "```" + `

## Setup

### Frontend (` + "`{{.FrontendDir}}/`" + `)
Refer to the original repo for setup instructions:
- {{.FrontendURL}}

### Backend (` + "`{{.BackendDir}}/`" + `)
Refer to the original repo for setup instructions:
- {{.BackendURL}}

> A ` + "`.env`" + ` file has been created in ` + "`{{.BackendDir}}/`" + ` with your Supabase credentials.
> See ` + "`{{.BackendDir}}/.env.example`" + ` for the expected format.
> **Never commit ` + "`.env`" + ` to version control.**
`))

// RenderReadme renders the project README.
func RenderReadme(d ReadmeData) (string, error) {
	var buf bytes.Buffer
	if err := readmeTemplate.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteReadme renders and writes root/README.md, replacing any existing file.
// Returns E_FILE_WRITE_FAILED on I/O failure.
func WriteReadme(fsys fs.FS, root string, d ReadmeData) (string, error) {
	path := filepath.Join(root, ReadmeFile)
	content, err := RenderReadme(d)
	if err != nil {
		return path, writeFailed("failed to render README.md", path, err)
	}
	if err := fs.WriteFileAtomic(fsys, path, []byte(content), 0644); err != nil {
		return path, writeFailed("failed to write README.md", path, err)
	}
	return path, nil
}
