package api

import "net/http"

// indexHTML is a minimal upload form covering both tools.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>mdtools</title>
<style>
body { max-width: 40em; margin: 2em auto; font-family: sans-serif; }
fieldset { margin-bottom: 1.5em; }
label { display: block; margin: 0.5em 0; }
</style>
</head>
<body>
<h1>mdtools</h1>

<form method="post" action="/api/convert" enctype="multipart/form-data">
<fieldset>
<legend>Convert Markdown</legend>
<label>Markdown file <input type="file" name="file" accept=".md,.markdown" required></label>
<label>Format
<select name="format">
<option value="docx">DOCX</option>
<option value="html">HTML</option>
<option value="txt">TXT</option>
</select>
</label>
<label>Word template (optional) <input type="file" name="template" accept=".docx"></label>
<button type="submit">Convert</button>
</fieldset>
</form>

<form method="post" action="/api/edit" enctype="multipart/form-data">
<fieldset>
<legend>Edit headings</legend>
<label>Markdown file <input type="file" name="file" accept=".md,.markdown" required></label>
<label>Action
<select name="action">
<option value="upgrade">Upgrade levels</option>
<option value="downgrade">Downgrade levels</option>
<option value="remove_numbers">Remove numbering</option>
<option value="add_numbers">Add numbering</option>
</select>
</label>
<label>Numbering style
<select name="style">
<option value="technical">technical</option>
<option value="academic">academic</option>
<option value="chinese_bidding">chinese_bidding</option>
<option value="chinese_book">chinese_book</option>
</select>
</label>
<button type="submit">Edit</button>
</fieldset>
</form>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}
