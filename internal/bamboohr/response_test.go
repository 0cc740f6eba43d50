package bamboohr

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/customhttp"
)

func TestTranslate(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	policy := statusPolicy[payload]{
		http.StatusOK:       decodeBody[payload](),
		http.StatusConflict: failWith[payload](ErrDuplicateValue, "duplicate %s", "thing"),
	}

	tests := []struct {
		name    string
		out     *Outcome
		want    payload
		err     error
		message string
	}{
		{
			name: "200-success",
			out:  &Outcome{StatusCode: http.StatusOK, Body: []byte(`{"name":"Jane"}`)},
			want: payload{Name: "Jane"},
		},
		{
			name:    "Error-Transport",
			out:     &Outcome{Err: errors.New("connection refused")},
			err:     ErrTransport,
			message: "error executing request to /things: connection refused",
		},
		{
			name:    "200-EmptyBody",
			out:     &Outcome{StatusCode: http.StatusOK},
			err:     ErrEmptyResponse,
			message: "empty response from remote at /things, status=200",
		},
		{
			name: "200-WhitespaceBody",
			out:  &Outcome{StatusCode: http.StatusOK, Body: []byte(" \n\t ")},
			err:  ErrEmptyResponse,
		},
		{
			name: "500-EmptyBodyBeforeStatus",
			out:  &Outcome{StatusCode: http.StatusInternalServerError},
			err:  ErrEmptyResponse,
		},
		{
			name:    "200-NullBody",
			out:     &Outcome{StatusCode: http.StatusOK, Body: []byte("null")},
			err:     ErrMissingData,
			message: "response does not contain the expected data at /things",
		},
		{
			name: "200-MalformedBody",
			out:  &Outcome{StatusCode: http.StatusOK, Body: []byte(`{"name":`)},
			err:  ErrMalformedResponse,
		},
		{
			name: "409-Classified",
			out: &Outcome{
				StatusCode: http.StatusConflict,
				Header:     errorHeader("already there"),
				Body:       []byte("conflict"),
			},
			err:     ErrDuplicateValue,
			message: "duplicate thing already there at /things",
		},
		{
			name: "500-Unexpected",
			out: &Outcome{
				StatusCode: http.StatusInternalServerError,
				Header:     errorHeader("boom"),
				Body:       []byte("oops"),
			},
			err:     ErrUnexpectedStatus,
			message: "remote threw error code 500 (Internal Server Error) boom at /things",
		},
		{
			name:    "418-UnexpectedWithoutHeader",
			out:     &Outcome{StatusCode: http.StatusTeapot, Body: []byte("tea")},
			err:     ErrUnexpectedStatus,
			message: "remote threw error code 418 (I'm a teapot) at /things",
		},
	}

	for _, test := range tests {
		tt := test
		t.Run(tt.name, func(t *testing.T) {
			r := newRequest("/things", http.MethodGet, JSONMode)
			got, err := translate(context.Background(), r, tt.out, policy)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				if tt.message != "" {
					require.EqualError(t, err, tt.message)
				}
				var bambooErr *Error
				require.True(t, errors.As(err, &bambooErr))
				require.Equal(t, "/things", bambooErr.Path)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_CreatedID(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     int
		err      error
	}{
		{
			name:     "201-Location",
			location: "https://host/v1/employees/482",
			want:     482,
		},
		{
			name:     "201-NoDigits",
			location: "https://host/v1/employees/",
			err:      ErrMissingData,
		},
		{
			name: "201-NoLocation",
			err:  ErrMissingData,
		},
	}

	for _, test := range tests {
		tt := test
		t.Run(tt.name, func(t *testing.T) {
			r := newRequest("/employees/", http.MethodPost, XMLMode)
			out := &Outcome{
				StatusCode: http.StatusCreated,
				Header:     http.Header{},
				Body:       []byte("<created/>"),
			}
			if tt.location != "" {
				out.Header.Set(headerLocation, tt.location)
			}

			got, err := translate(context.Background(), r, out, statusPolicy[int]{http.StatusCreated: createdID()})
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_XMLDecode(t *testing.T) {
	r := newRequest("/meta/lists/17", http.MethodPut, XMLMode)
	out := &Outcome{
		StatusCode: http.StatusOK,
		Body: []byte(`<list fieldId="17" alias="department" manageable="yes" multiple="no">
<name>Department</name>
<options><option id="1" archived="no">Engineering` + "\x01" + `</option></options>
</list>`),
	}

	got, err := translate(context.Background(), r, out, statusPolicy[ListField]{http.StatusOK: decodeBody[ListField]()})
	require.NoError(t, err)
	require.Equal(t, 17, got.FieldID)
	require.Equal(t, "Department", got.Name)
	require.Len(t, got.Options, 1)
	require.Equal(t, "Engineering", got.Options[0].Value)
}

func TestTranslate_ZeroDates(t *testing.T) {
	r := newRequest("/employees/1", http.MethodGet, JSONMode)
	out := &Outcome{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"id":"1","hireDate":"0000-00-00","terminationDate": "0000-00-00","dateOfBirth":"1990-02-03"}`),
	}

	got, err := translate(context.Background(), r, out, statusPolicy[Employee]{http.StatusOK: decodeBody[Employee]()})
	require.NoError(t, err)
	require.Nil(t, got.HireDate)
	require.NotNil(t, got.TerminationDate)
	require.True(t, got.TerminationDate.IsZero())
	require.Equal(t, "1990-02-03", got.DateOfBirth.String())
}

func TestDate_UnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		zero    bool
		wantErr bool
	}{
		{in: "2024-03-04", want: "2024-03-04"},
		{in: " 2024-03-04 ", want: "2024-03-04"},
		{in: "0000-00-00", zero: true},
		{in: "", zero: true},
		{in: "04/03/2024", wantErr: true},
	}

	for _, test := range tests {
		tt := test
		t.Run(tt.in, func(t *testing.T) {
			var d Date
			err := d.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.zero {
				require.True(t, d.IsZero())
				return
			}
			require.Equal(t, tt.want, d.String())
		})
	}
}

func TestTranslate_EmptyNotesArray(t *testing.T) {
	r := newRequest(timeOffRequestsEndpoint, http.MethodGet, JSONMode)
	out := &Outcome{
		StatusCode: http.StatusOK,
		Body: []byte(`[
{"id":"1","employeeId":"7","notes":[]},
{"id":"2","employeeId":"7","notes":{"employee":"beach","manager":"ok"}},
{"id":"3","employeeId":"7","notes":null}
]`),
	}

	got, err := translate(context.Background(), r, out, statusPolicy[[]TimeOffRequest]{http.StatusOK: decodeBody[[]TimeOffRequest]()})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Empty(t, got[0].Notes)
	require.Equal(t, "beach", got[1].Notes["employee"])
	require.Nil(t, got[2].Notes)
}

func TestNotes_RejectsNonEmptyArray(t *testing.T) {
	var n Notes
	require.Error(t, n.UnmarshalJSON([]byte(`["beach"]`)))
}

func TestTranslate_RawBodyIsNotPreprocessed(t *testing.T) {
	r := newRequest("/employees/1/photo/small", http.MethodGet, BinaryMode)
	raw := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	out := &Outcome{StatusCode: http.StatusOK, Body: raw}

	got, err := translate(context.Background(), r, out, statusPolicy[[]byte]{http.StatusOK: rawBody()})
	require.NoError(t, err)
	require.Equal(t, raw, got)
}

func TestDo_LogsEachCallOnce(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`[]`))
		require.NoError(t, err)
	}))
	t.Cleanup(s.Close)

	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	t.Cleanup(func() { log.SetLevel(level) })
	hook := logtest.NewGlobal()
	t.Cleanup(func() { log.StandardLogger().ReplaceHooks(make(log.LevelHooks)) })

	c := NewClient(s.URL, testCompanyURL, testAPIKey,
		customhttp.New(customhttp.WithHTTPClient(s.Client()), customhttp.WithRequestLogging()).Build())
	_, err := c.GetFields(context.Background())
	require.NoError(t, err)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	require.Equal(t, log.DebugLevel, entry.Level)
	require.Equal(t, "/meta/fields/", entry.Data["path"])
	require.Equal(t, http.StatusOK, entry.Data["status"])
}

func errorHeader(message string) http.Header {
	h := http.Header{}
	h.Set(errorMessageHeader, message)
	return h
}
