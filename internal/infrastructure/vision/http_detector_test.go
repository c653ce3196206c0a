package vision

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"traffic-density/internal/domain/entity"
)

func TestHTTPDetector_Detect(t *testing.T) {
	var gotConf string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/detect", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotConf = r.FormValue("conf_threshold")

		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		gotBody, _ = io.ReadAll(f)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"detections":[
			{"class":"car","confidence":0.91,"bbox":[10,20,50,60]},
			{"class":"truck","confidence":0.2,"bbox":[0,0,5,5]},
			{"class":"person","confidence":0.4,"bbox":[100.5,10,120.5,40]}
		]}`))
	}))
	defer srv.Close()

	d := NewHTTPDetector(srv.URL+"/", time.Second)
	frame := &entity.Frame{Data: []byte("jpeg-bytes"), Width: 640, Height: 480, Format: "jpeg"}

	dets, err := d.Detect(context.Background(), frame, 0.25)
	require.NoError(t, err)
	require.Equal(t, "0.250", gotConf)
	require.Equal(t, []byte("jpeg-bytes"), gotBody)

	require.Len(t, dets, 2)
	require.Equal(t, entity.Detection{X1: 10, Y1: 20, X2: 50, Y2: 60, Confidence: 0.91, Class: "car"}, dets[0])
	require.Equal(t, "person", dets[1].Class, "classes are not filtered")
	require.InDelta(t, 100.5, dets[1].X1, 1e-9)
}

func TestHTTPDetector_Errors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		}},
		{"json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{"))
		}},
		{"bbox", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"detections":[{"class":"car","confidence":0.9,"bbox":[1,2,3]}]}`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			_, err := NewHTTPDetector(srv.URL, time.Second).Detect(context.Background(), &entity.Frame{Data: []byte("x")}, 0.25)
			require.ErrorIs(t, err, entity.ErrDetection)
		})
	}
}

func TestHTTPDetector_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPDetector(url, time.Second).Detect(context.Background(), &entity.Frame{Data: []byte("x")}, 0.25)
	require.ErrorIs(t, err, entity.ErrDetection)
}
