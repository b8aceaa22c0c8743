package home

import (
	"net/http"

	"shortlink/internal/http/httputils"
)

// HandlerHome serves a tiny inline single-page UI for link creation and
// management. Cookies carry the session; the page only talks to /api.
func HandlerHome() http.HandlerFunc {
	const page = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>shortlink</title>
<style>
body{font-family:system-ui,sans-serif;margin:0;padding:2rem;background:#0b0b0c;color:#e8e8ea}
.container{max-width:680px;margin:0 auto}
.card{background:#151517;border:1px solid #2b2b2f;border-radius:12px;padding:1.25rem;margin-bottom:1rem}
h1{font-size:1.25rem;margin:0 0 1rem}
input,button{font-size:1rem}
input{width:100%;box-sizing:border-box;padding:.6rem;margin-top:.5rem;border-radius:8px;border:1px solid #2b2b2f;background:#0f0f11;color:#e8e8ea}
button{margin-top:.75rem;padding:.6rem 1rem;border:1px solid #2b2b2f;background:#1f1f23;color:#e8e8ea;border-radius:8px;cursor:pointer}
pre{white-space:pre-wrap;word-break:break-word;background:#0f0f11;border:1px solid #2b2b2f;border-radius:8px;padding:.75rem}
a{color:#97b3ff}
table{width:100%;border-collapse:collapse;margin-top:.75rem}
td,th{border-bottom:1px solid #2b2b2f;padding:.4rem;text-align:left;font-size:.9rem}
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h1>shortlink — make a short link</h1>
    <input id="url" type="text" placeholder="https://example.com/very/long/link"/>
    <input id="slug" type="text" placeholder="custom slug (optional, needs login)"/>
    <button id="go">Shorten</button>
    <div id="out" style="margin-top:1rem"></div>
  </div>
  <div class="card">
    <h1>Account</h1>
    <input id="name" type="text" placeholder="name (register only)"/>
    <input id="email" type="text" placeholder="email"/>
    <input id="password" type="password" placeholder="password"/>
    <button id="register">Register</button>
    <button id="login">Login</button>
    <button id="logout">Logout</button>
    <button id="list">My links</button>
    <div id="links"></div>
  </div>
</div>
<script>
async function call(path, method, body){
  const res = await fetch(path, {
    method: method,
    headers: {'Content-Type':'application/json'},
    credentials: 'same-origin',
    body: body ? JSON.stringify(body) : undefined
  });
  return { ok: res.ok, data: await res.json().catch(() => ({})) };
}
async function shorten(){
  const url = document.getElementById('url').value.trim();
  const slug = document.getElementById('slug').value.trim();
  const r = slug
    ? await call('/api/custom', 'POST', { full_url: url, short_url: slug })
    : await call('/api/create', 'POST', { url: url });
  const out = document.getElementById('out');
  if(!r.ok){ out.innerHTML = '<pre>'+JSON.stringify(r.data)+'</pre>'; return; }
  out.innerHTML = '<p><a href="'+r.data.shortUrl+'">'+r.data.shortUrl+'</a></p>';
}
async function listLinks(){
  const r = await call('/api/urls', 'GET');
  const el = document.getElementById('links');
  if(!r.ok){ el.innerHTML = '<pre>'+JSON.stringify(r.data)+'</pre>'; return; }
  el.innerHTML = '<table><tr><th>code</th><th>destination</th><th>clicks</th></tr>'+
    r.data.map(l => '<tr><td>'+l.short_url+'</td><td>'+l.full_url+'</td><td>'+l.clicks+'</td></tr>').join('')+
    '</table>';
}
document.getElementById('go').addEventListener('click', shorten);
document.getElementById('list').addEventListener('click', listLinks);
document.getElementById('register').addEventListener('click', async () => {
  const r = await call('/api/auth/register', 'POST', {
    name: document.getElementById('name').value,
    email: document.getElementById('email').value,
    password: document.getElementById('password').value
  });
  document.getElementById('links').innerHTML = '<pre>'+JSON.stringify(r.data.message || r.data)+'</pre>';
});
document.getElementById('login').addEventListener('click', async () => {
  const r = await call('/api/auth/login', 'POST', {
    email: document.getElementById('email').value,
    password: document.getElementById('password').value
  });
  document.getElementById('links').innerHTML = '<pre>'+JSON.stringify(r.data.message || r.data)+'</pre>';
});
document.getElementById('logout').addEventListener('click', async () => {
  const r = await call('/api/auth/logout', 'POST');
  document.getElementById('links').innerHTML = '<pre>'+JSON.stringify(r.data.message || r.data)+'</pre>';
});
</script>
</body>
</html>`

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(httputils.HeaderContentType, httputils.MIMETextHTML+"; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(page))
	}
}
