package generator

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// templateMarkup is the deterministic fallback application: always valid,
// always non-empty, independent of provider availability.
const templateMarkup = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Generated Application</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <style>
        body {
            padding: 20px;
            background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
            min-height: 100vh;
        }
        .container {
            background: white;
            border-radius: 10px;
            padding: 30px;
            box-shadow: 0 10px 40px rgba(0,0,0,0.2);
            margin-top: 50px;
        }
        .app-title {
            color: #667eea;
            margin-bottom: 30px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1 class="app-title">Generated Application</h1>
        <div class="alert alert-info">
            <h5>Brief:</h5>
            <p>%s</p>
        </div>
        <div id="app-content">
            <p class="text-muted">Application implementation goes here.</p>
        </div>
    </div>
    <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/js/bootstrap.bundle.min.js"></script>
</body>
</html>`

func templateArtifact(brief string, checks []string) (markup, readme string) {
	return fmt.Sprintf(templateMarkup, html.EscapeString(brief)), templateReadme(brief, checks)
}

func templateReadme(brief string, checks []string) string {
	checksText := "No specific checks provided."
	if len(checks) > 0 {
		var lines []string
		for _, check := range checks {
			lines = append(lines, "- "+check)
		}
		checksText = strings.Join(lines, "\n")
	}
	return fmt.Sprintf(`# Generated Application

## Overview
This application was automatically generated based on the following brief:

%s

## Requirements
%s

## Usage
1. Visit the GitHub Pages URL for this repository
2. The application loads automatically in your browser

## Technical Details
- Built with HTML5, CSS3, and JavaScript
- Uses Bootstrap 5 for styling
- Responsive design for all devices

## License
MIT License
`, brief, checksText)
}

func mitLicense(year int) string {
	return fmt.Sprintf(`MIT License

Copyright (c) %d

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`, year)
}

// currentYear is swapped in tests for a fixed value
var currentYear = func() int { return time.Now().UTC().Year() }
