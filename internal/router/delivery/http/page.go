package http

const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Weather + AI Bot</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 40px auto; line-height: 1.5; }
input[type=text] { width: 80%; padding: 6px; }
.reply { background: #f4f6f8; padding: 10px 14px; border-radius: 6px; }
.error { color: #b00020; }
</style>
</head>
<body>
<h1>Weather + AI Bot</h1>
<p>Ask about today's date, the weather in a city, or anything else.</p>
<form method="POST" action="/">
<input type="text" name="message" value="{{.Message}}" placeholder="What's the weather in Paris?" autofocus>
<button type="submit">Send</button>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Reply}}<div class="reply">{{.Reply}}</div>{{end}}
</body>
</html>
`
