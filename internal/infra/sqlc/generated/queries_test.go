//go:build unit

package sqlc

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// queryText maps every query name to the SQL this package sends for it.
var queryText = map[string]string{
	"CreateBookingCalendarEvent":       createBookingCalendarEvent,
	"ListBookingCalendarEvents":        listBookingCalendarEvents,
	"CancelBooking":                    cancelBooking,
	"CreateBooking":                    createBooking,
	"DeleteBookingsStartedBefore":      deleteBookingsStartedBefore,
	"GetBookingByID":                   getBookingByID,
	"GetBookingForLink":                getBookingForLink,
	"ListConfirmedBookingsOverlapping": listConfirmedBookingsOverlapping,
	"GetCalendarAccountByUserID":       getCalendarAccountByUserID,
	"UpsertContact":                    upsertContact,
	"CancelQueuedJobsForBooking":       cancelQueuedJobsForBooking,
	"ClaimDueNotificationJobs":         claimDueNotificationJobs,
	"CreateNotificationJob":            createNotificationJob,
	"UpdateNotificationJobStatus":      updateNotificationJobStatus,
	"GetScheduleLinkByID":              getScheduleLinkByID,
	"GetScheduleLinkBySlug":            getScheduleLinkBySlug,
	"ListLinkMembers":                  listLinkMembers,
	"ListWindowsByLinkAndDay":          listWindowsByLinkAndDay,
	"ListActiveWorkflowSteps":          listActiveWorkflowSteps,
}

var (
	nameLine   = regexp.MustCompile(`(?m)^-- name: (\w+) :\w+`)
	namedParam = regexp.MustCompile(`sqlc\.n?arg\((\w+)\)|@(\w+)`)
	positional = regexp.MustCompile(`\$\d+`)
)

// sourceQueries reads the query files the way sqlc does: one block per
// "-- name:" line, trailing semicolon dropped.
func sourceQueries(t *testing.T) map[string]string {
	t.Helper()

	files, err := filepath.Glob(filepath.Join("..", "queries", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	out := make(map[string]string)
	for _, f := range files {
		raw, err := os.ReadFile(f)
		require.NoError(t, err)
		text := string(raw)

		starts := nameLine.FindAllStringSubmatchIndex(text, -1)
		for i, loc := range starts {
			end := len(text)
			if i+1 < len(starts) {
				end = starts[i+1][0]
			}
			name := text[loc[2]:loc[3]]
			block := strings.TrimSuffix(strings.TrimSpace(text[loc[0]:end]), ";")
			require.NotContains(t, out, name, "duplicate query name in %s", f)
			out[name] = block
		}
	}
	return out
}

// numberParams rewrites named parameters to $N in order of first use.
func numberParams(t *testing.T, name, query string) string {
	t.Helper()

	if namedParam.MatchString(query) {
		// sqlc rejects a query that mixes both styles.
		require.False(t, positional.MatchString(query), "%s mixes positional and named parameters", name)
	}

	seen := make(map[string]int)
	return namedParam.ReplaceAllStringFunc(query, func(m string) string {
		sub := namedParam.FindStringSubmatch(m)
		param := sub[1] + sub[2]
		if _, ok := seen[param]; !ok {
			seen[param] = len(seen) + 1
		}
		return "$" + strconv.Itoa(seen[param])
	})
}

func TestQueriesMatchSource(t *testing.T) {
	source := sourceQueries(t)

	names := make(map[string]bool)
	for name := range source {
		names[name] = true
	}
	for name := range queryText {
		names[name] = true
	}

	for name := range names {
		t.Run(name, func(t *testing.T) {
			src, ok := source[name]
			require.True(t, ok, "no query file defines %s", name)
			sent, ok := queryText[name]
			require.True(t, ok, "%s has no Go query", name)

			if diff := cmp.Diff(numberParams(t, name, src), strings.TrimSpace(sent)); diff != "" {
				t.Errorf("%s differs from its query file (-source +go):\n%s", name, diff)
			}
		})
	}
}
