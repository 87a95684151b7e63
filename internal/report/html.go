package report

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"PivotPeers/internal/model"
)

// FormulaSub is the subtitle describing the pivot formula, shown in the HTML
// page and on the PDF cover.
const FormulaSub = "P=(H+L+C)/3; S1=2P-H; S2=P-(H-L); R1=2P-L; R2=P+(H-L)"

const htmlPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; margin: 16px; }
  h1 { font-size: 1.25rem; margin: 0 0 8px; }
  h2 { font-size: 1.1rem; margin: 20px 0 10px; }
  .sub { color: #666; font-size: .85rem; margin-bottom: 12px; }
  .bar { display: flex; gap: 8px; flex-wrap: wrap; margin: 12px 0; align-items: center; }
  .btn { text-decoration: none; padding: 10px 14px; border-radius: 10px; border: 1px solid #ddd; }
  .chips { display: flex; gap: 8px; flex-wrap: wrap; margin: 4px 0 10px; }
  .chip { padding: 6px 10px; border-radius: 999px; border: 1px solid #ddd; background: #fafafa; text-decoration: none; color: #333; }
  .table-wrap { overflow-x: auto; -webkit-overflow-scrolling: touch; border: 1px solid #eee; border-radius: 10px; }
  table { border-collapse: collapse; width: 100%; font-size: 14px; }
  th, td { white-space: nowrap; padding: 10px 12px; border-bottom: 1px solid #f0f0f0; }
  th { position: sticky; top: 0; background: #fafafa; text-align: left; }
  .pos { color: #1a7f37; }
  .neg { color: #cc0000; }
  @media (max-width: 480px) {
    table { font-size: 13px; }
    th, td { padding: 8px 10px; }
  }
</style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div class="sub">{{.Sub}}</div>

  <div class="bar">
    <a class="btn" href="{{.PDFURL}}">&#128196; Download PDF</a>
    <a class="btn" href="{{.CSVName}}">&#11015;&#65039; Download CSV</a>
  </div>

  <div class="chips">
{{- range .Groups}}
    <a class="chip" href="#sec_{{.Seed}}">{{.Seed}}</a>
{{- end}}
  </div>

{{- range .Groups}}
  <section id="sec_{{.Seed}}">
    <h2>{{.Label}}</h2>
    <div class="table-wrap">
      <table>
        <thead><tr><th>Ticker</th><th>Date</th><th>High</th><th>Low</th><th>Close</th><th>PrevClose</th><th>% Chg</th><th>Pivot P</th><th>S1</th><th>S2</th><th>R1</th><th>R2</th></tr></thead>
        <tbody>
{{- range .Rows}}
          <tr><td>{{.Symbol}}</td><td>{{.Date}}</td><td>{{printf "%.2f" .High}}</td><td>{{printf "%.2f" .Low}}</td><td>{{printf "%.2f" .Close}}</td><td>{{printf "%.2f" .PrevClose}}</td><td><span class="{{if ge .ChangePct 0.0}}pos{{else}}neg{{end}}">{{printf "%.2f" .ChangePct}}%</span></td><td>{{printf "%.2f" .Pivot.P}}</td><td>{{printf "%.2f" .Pivot.S1}}</td><td>{{printf "%.2f" .Pivot.S2}}</td><td>{{printf "%.2f" .Pivot.R1}}</td><td>{{printf "%.2f" .Pivot.R2}}</td></tr>
{{- end}}
        </tbody>
      </table>
    </div>
  </section>
{{- end}}

  <div class="sub" style="margin-top:10px;color:#888;">Updated at: {{.Generated}}</div>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").Parse(htmlPage))

type htmlData struct {
	Title     string
	Sub       string
	PDFURL    string
	CSVName   string
	Groups    []*model.Group
	Generated string
}

// WriteHTML renders the responsive report page.
func WriteHTML(groups []*model.Group, title, pdfURL, csvName, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html: %w", err)
	}
	defer f.Close()

	data := htmlData{
		Title:     title,
		Sub:       FormulaSub,
		PDFURL:    pdfURL,
		CSVName:   csvName,
		Groups:    groups,
		Generated: time.Now().Format("2006-01-02 15:04"),
	}
	if err := htmlTmpl.Execute(f, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
