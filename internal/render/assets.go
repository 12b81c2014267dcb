package render

const stylesheet = `
:root{color-scheme:dark;--bg:#0b0f17;--card:#131a26;--line:rgba(255,255,255,.10);--text:#e9eef8;--muted:#8a94a8;--accent:#5b8cff}
*{box-sizing:border-box}
body{margin:0;padding:24px;background:var(--bg);color:var(--text);font:14px/1.5 system-ui,sans-serif}
.top{display:flex;justify-content:space-between;align-items:baseline;gap:12px}
h1{font-size:18px;margin:0 0 12px}
.meta,.muted{color:var(--muted);font-size:12px}
.controls{display:flex;flex-wrap:wrap;gap:8px;margin-bottom:16px}
.controls input[type=search]{flex:1;min-width:220px}
input,select,.btn{background:var(--card);color:var(--text);border:1px solid var(--line);border-radius:8px;padding:6px 10px;font:inherit;text-decoration:none}
.btn{cursor:pointer}
.btn.primary{border-color:var(--accent)}
.btn.disabled{opacity:.4;cursor:default}
.toggle{display:flex;align-items:center;gap:4px;color:var(--muted)}
.error{border:1px solid #ff6b6b;color:#ffb3b3;border-radius:8px;padding:10px;margin-bottom:16px}
.card{background:var(--card);border:1px solid var(--line);border-radius:12px;padding:14px;margin-bottom:12px}
.cardHeader{display:flex;justify-content:space-between;align-items:center;gap:8px}
.id{font-family:ui-monospace,monospace}
.actions{display:flex;gap:6px}
.audio{margin:10px 0}
.audio audio{width:100%}
.block{margin-top:8px}
.label{color:var(--muted);font-size:12px}
.text{white-space:pre-wrap;word-break:break-word}
.raw pre{white-space:pre-wrap;word-break:break-word;font-size:12px}
.pager{display:flex;align-items:center;gap:10px;margin-top:12px}
#__toast{position:fixed;left:50%;bottom:22px;transform:translateX(-50%);padding:10px 12px;border:1px solid var(--line);border-radius:999px;background:rgba(0,0,0,.55);font-size:12px;opacity:0;transition:opacity .2s}
`

const script = `
(function(){
  const form = document.getElementById("controls");
  const q = document.getElementById("q");
  let pending = null;
  q.addEventListener("input", function(){
    clearTimeout(pending);
    pending = setTimeout(function(){ form.submit(); }, DEBOUNCE_MS);
  });
  ["field","pageSize","autoExpandJson"].forEach(function(id){
    const el = document.getElementById(id);
    if (el) el.addEventListener("change", function(){ clearTimeout(pending); form.submit(); });
  });

  let toastTimer = null;
  function toast(msg){
    clearTimeout(toastTimer);
    let el = document.getElementById("__toast");
    if (!el) { el = document.createElement("div"); el.id = "__toast"; document.body.appendChild(el); }
    el.textContent = msg;
    el.style.opacity = "1";
    toastTimer = setTimeout(function(){ el.style.opacity = "0"; }, 900);
  }
  async function copyText(text){
    try {
      await navigator.clipboard.writeText(text);
    } catch (e) {
      const ta = document.createElement("textarea");
      ta.value = text;
      document.body.appendChild(ta);
      ta.select();
      document.execCommand("copy");
      ta.remove();
    }
    toast("Copied");
  }
  document.getElementById("list").addEventListener("click", async function(ev){
    const btn = ev.target.closest("button");
    if (!btn) return;
    if (btn.dataset.copy !== undefined) { copyText(btn.dataset.copy); return; }
    if (btn.dataset.copyjson !== undefined) {
      const res = await fetch("/api/records?id=" + encodeURIComponent(btn.dataset.copyjson));
      if (res.ok) copyText(await res.text());
    }
  });
})();
`
