package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkfatec/internal/config"
	"linkfatec/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRest(t *testing.T, handler http.HandlerFunc) *RestClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rest, err := NewRestClient(zap.NewNop(), &config.Config{
		APIBaseURL: srv.URL + "/api/",
		APITimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return rest
}

func TestJobOfferService(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fetch available offers for a course", func(t *testing.T) {
		rest := newTestRest(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/job-offers/available/course/3", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get(requestIDHeader))
			_, _ = io.WriteString(w, `[{"id": 1, "company_name": "Acme", "liked_by": [7], "subscribed_by": []}]`)
		})

		resp, err := NewJobOfferService(rest, zap.NewNop()).GetAllAvailableJobs(ctx, 3)
		require.NoError(t, err)
		assert.True(t, resp.IsSuccessful())
		require.Len(t, resp.Body, 1)
		assert.Equal(t, "Acme", resp.Body[0].CompanyName)
		assert.Equal(t, []int{7}, resp.Body[0].LikedBy)
	})

	t.Run("Should post the like form", func(t *testing.T) {
		rest := newTestRest(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/job-offer/12/like", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "7", r.PostForm.Get("student_id"))
			assert.Equal(t, "false", r.PostForm.Get("like"))
			w.WriteHeader(http.StatusNoContent)
		})

		resp, err := NewJobOfferService(rest, zap.NewNop()).LikeJob(ctx, 12, 7, false)
		require.NoError(t, err)
		assert.True(t, resp.IsSuccessful())
	})

	t.Run("Should post the subscribe form", func(t *testing.T) {
		rest := newTestRest(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/student/job-offer/subscribe", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "12", r.PostForm.Get("job_id"))
			assert.Equal(t, "7", r.PostForm.Get("student_id"))
			_, _ = io.WriteString(w, "ok")
		})

		resp, err := NewJobOfferService(rest, zap.NewNop()).SubscribeJob(ctx, 12, 7)
		require.NoError(t, err)
		assert.Equal(t, []byte("ok"), resp.Body)
	})

	t.Run("Should keep the error body of a non-2xx response", func(t *testing.T) {
		rest := newTestRest(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"message": "already subscribed"}`)
		})

		resp, err := NewJobOfferService(rest, zap.NewNop()).SubscribeJob(ctx, 12, 7)
		require.NoError(t, err)
		assert.False(t, resp.IsSuccessful())
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, string(resp.ErrorBody), "already subscribed")
	})

	t.Run("Should reject non-positive ids before calling the backend", func(t *testing.T) {
		called := false
		rest := newTestRest(t, func(w http.ResponseWriter, r *http.Request) { called = true })

		_, err := NewJobOfferService(rest, zap.NewNop()).LikeJob(ctx, 0, 7, true)
		assert.Equal(t, errors.ErrTypeInvalidInput, errors.TypeOf(err))
		assert.False(t, called)
	})

	t.Run("Should fail decoding a malformed body", func(t *testing.T) {
		rest := newTestRest(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"not": "a list"}`)
		})

		_, err := NewJobOfferService(rest, zap.NewNop()).GetAllAvailableJobs(ctx, 3)
		assert.Equal(t, errors.ErrTypeInternal, errors.TypeOf(err))
	})
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL + "/"
	srv.Close()

	rest, err := NewRestClient(zap.NewNop(), &config.Config{APIBaseURL: base, APITimeout: time.Second})
	require.NoError(t, err)

	_, err = NewStudentService(rest, zap.NewNop()).GetNotifications(context.Background(), 7)
	assert.Equal(t, errors.ErrTypeTransport, errors.TypeOf(err))
}

func TestProfileService(t *testing.T) {
	ctx := context.Background()

	t.Run("Should upload the resume as a multipart pdf", func(t *testing.T) {
		rest := newTestRest(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/student/7/resume", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "7", r.FormValue("student_id"))

			file, header, err := r.FormFile("resume")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "resume.pdf", header.Filename)
			assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
			data, _ := io.ReadAll(file)
			assert.Equal(t, "%PDF-1.4", string(data))
		})

		resp, err := NewProfileService(rest, zap.NewNop()).SendProfileResume(ctx, 7, []byte("%PDF-1.4"))
		require.NoError(t, err)
		assert.True(t, resp.IsSuccessful())
	})

	t.Run("Should send an empty part for a nil picture", func(t *testing.T) {
		rest := newTestRest(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/student/7/profile-picture", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("profile_picture")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "application/octet-stream", header.Header.Get("Content-Type"))
			data, _ := io.ReadAll(file)
			assert.Empty(t, data)
		})

		resp, err := NewProfileService(rest, zap.NewNop()).SendProfilePicture(ctx, 7, nil)
		require.NoError(t, err)
		assert.True(t, resp.IsSuccessful())
	})
}

func TestStudentAndLoginServices(t *testing.T) {
	ctx := context.Background()
	rest := newTestRest(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/student/7":
			_, _ = io.WriteString(w, `{"id": 7, "name": "Ana", "course": {"id": 3, "name": "ADS"}}`)
		case "/api/student/7/job-offers/applied":
			_, _ = io.WriteString(w, `[{"id": 5, "subscribed_by": [7]}]`)
		case "/api/student/7/notifications":
			_, _ = io.WriteString(w, `[{"id": 1, "title": "Nova vaga", "job_offer_id": 5}]`)
		case "/api/login":
			require.NoError(t, r.ParseForm())
			if r.PostForm.Get("password") != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = io.WriteString(w, `{"id": 7, "name": "Ana", "course": {"id": 3, "name": "ADS"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	students := NewStudentService(rest, zap.NewNop())

	user, err := students.GetStudent(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "ADS", user.Body.Course.Name)

	applied, err := students.GetAppliedJobOffers(ctx, 7)
	require.NoError(t, err)
	require.Len(t, applied.Body, 1)
	assert.Equal(t, 5, applied.Body[0].ID)

	notifications, err := students.GetNotifications(ctx, 7)
	require.NoError(t, err)
	require.Len(t, notifications.Body, 1)
	require.NotNil(t, notifications.Body[0].JobOfferID)
	assert.Equal(t, 5, *notifications.Body[0].JobOfferID)

	login := NewLoginService(rest, zap.NewNop())
	ok, err := login.Login(ctx, "ana@fatec.sp.gov.br", "secret")
	require.NoError(t, err)
	assert.Equal(t, 7, ok.Body.ID)

	denied, err := login.Login(ctx, "ana@fatec.sp.gov.br", "wrong")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, denied.StatusCode)
}
