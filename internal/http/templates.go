package http

const pageTemplates = `
{{define "head"}}<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.}}</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;max-width:1100px;margin:0 auto;padding:1rem;background:#111;color:#eee}
a{color:#8ab4f8}
header{display:flex;justify-content:space-between;align-items:center;margin-bottom:1rem}
nav a{margin-left:12px}
.grid{display:grid;gap:16px}
.card{background:#1c1c1c;border-radius:8px;overflow:hidden;text-decoration:none;color:inherit;display:block}
.card img{width:100%;aspect-ratio:16/9;object-fit:cover;display:block}
.card .body{padding:8px 12px}
.title{font-weight:600}
.muted, small{color:#999}
.detail img{max-width:100%;border-radius:8px}
.button{display:inline-block;padding:10px 24px;border-radius:6px;background:#e50914;color:#fff;text-decoration:none;font-weight:600}
video{width:100%;max-height:80vh;background:#000}
.queue iframe{width:100%;aspect-ratio:16/9;border:0;border-radius:8px}
.queue li{margin-bottom:16px}
ul{list-style:none;padding:0;margin:0}
form input[type=url],form input[type=text]{width:70%;padding:8px}
.error{color:#ff6b6b}
</style>
<header>
  <strong><a href="/">Movies</a></strong>
  <nav><a href="/">Home</a><a href="/youtube">YouTube</a></nav>
</header>
{{end}}

{{define "home"}}{{template "head" "Movies"}}
{{if .Cards}}
<section class="grid" style="grid-template-columns:repeat({{.Columns}},1fr)">
  {{range .Cards}}
  <a class="card" href="{{.Link}}">
    {{if .Thumbnail}}<img src="{{.Thumbnail}}" alt="{{.Title}}" loading="lazy" />{{end}}
    <div class="body">
      <div class="title">{{.Title}}</div>
      {{if .Excerpt}}<small>{{.Excerpt}}</small>{{end}}
    </div>
  </a>
  {{end}}
</section>
{{end}}
</html>
{{end}}

{{define "detail"}}{{template "head" .Movie.Title}}
<article class="detail">
  {{if .Image}}<img src="{{.Image}}" alt="{{.Movie.Title}}" />{{end}}
  <h1>{{.Movie.Title}}</h1>
  {{if .Bio}}<p>{{.Bio}}</p>{{end}}
  <p>Year: {{.Year}}</p>
  <p>Original Language: {{.Language}}</p>
  <p>Genres: {{.Genres}}</p>
  <p><a class="button" href="{{.PlayLink}}">Play</a></p>
</article>
</html>
{{end}}

{{define "player"}}{{template "head" .Title}}
<h1>{{.Title}}</h1>
{{if .Error}}
<p class="error">{{.Error}}</p>
{{else}}
<video controls autoplay playsinline crossorigin="anonymous">
  <source src="{{.Source.URL}}"{{if .MimeType}} type="{{.MimeType}}"{{end}} />
  {{if .SubtitleSrc}}<track kind="subtitles" srclang="en" label="English" src="{{.SubtitleSrc}}" default />{{end}}
</video>
{{end}}
</html>
{{end}}

{{define "youtube"}}{{template "head" "YouTube"}}
<form method="post" action="/youtube">
  <input type="text" name="url" placeholder="Paste a YouTube link" required />
  <button type="submit">Add</button>
</form>
{{if .Invalid}}<p class="error">No video id found in that link</p>{{end}}
<ul class="queue">
  {{range .Items}}
  <li>
    {{if .Title}}<div class="title">{{.Title}}</div>{{end}}
    <iframe src="{{.EmbedURL}}" title="{{.VideoID}}" allow="accelerometer; autoplay; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe>
    <small><a href="{{.WatchURL}}">{{.WatchURL}}</a></small>
  </li>
  {{end}}
</ul>
</html>
{{end}}

{{define "error"}}{{template "head" .}}
<p class="error">{{.}}</p>
<p><a href="/">Back</a></p>
</html>
{{end}}
`
