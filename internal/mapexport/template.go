package mapexport

import "html/template"

const mapTmplString = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
html, body { height: 100%; margin: 0; }
#job-map { height: 100%; width: 100%; }
</style>
</head>
<body>
<div id="job-map" data-center-lat="{{.CenterLat}}" data-center-lon="{{.CenterLon}}" data-zoom="{{.Zoom}}" data-marker-count="{{len .Markers}}"></div>
<section class="job-index" hidden>
<ul class="job-list">
{{- range .Markers}}
<li data-lat="{{.Lat}}" data-lng="{{.Lng}}">{{.Popup}}</li>
{{- end}}
</ul>
</section>
<script type="application/json" id="job-markers">{{.Markers}}</script>
<script>
(function () {
  var el = document.getElementById("job-map");
  var map = L.map(el).setView(
    [parseFloat(el.dataset.centerLat), parseFloat(el.dataset.centerLon)],
    parseInt(el.dataset.zoom, 10)
  );
  L.tileLayer({{.TileURL}}, { attribution: {{.Attribution}}, maxZoom: 19 }).addTo(map);
  var markers = JSON.parse(document.getElementById("job-markers").textContent);
  markers.forEach(function (m) {
    var label = document.createElement("span");
    label.textContent = m.popup;
    L.marker([m.lat, m.lng]).bindPopup(label).addTo(map);
  });
})();
</script>
</body>
</html>
`

var mapTmpl = template.Must(template.New("job_map").Parse(mapTmplString))
