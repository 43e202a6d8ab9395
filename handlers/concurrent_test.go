// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/danielhkuo/waterlily-survey/models"
	"github.com/danielhkuo/waterlily-survey/testutil"
)

// TestConcurrentCreates verifies that simultaneous submissions each get
// their own id and every payload is stored intact
func TestConcurrentCreates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewResponseHandler(db, testutil.GetTestConfig())

	numClients := 10
	ids := make([]int64, numClients)
	var wg sync.WaitGroup

	for i := 0; i < numClients; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			answers := models.AnswerSet{"age": strconv.Itoa(20 + idx)}
			req := testutil.MakeRequest("POST", "/api/responses", answers, nil)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("client %d: expected 200, got %d: %s", idx, w.Code, w.Body.String())
				return
			}
			var resp models.CreateResponseResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Errorf("client %d: bad response: %v", idx, err)
				return
			}
			ids[idx] = resp.ID
		}(i)
	}

	wg.Wait()

	seen := make(map[int64]int)
	for idx, id := range ids {
		if prev, dup := seen[id]; dup {
			t.Errorf("clients %d and %d both got id %d", prev, idx, id)
		}
		seen[id] = idx
	}

	// Each stored payload belongs to the client that received its id
	for idx, id := range ids {
		idStr := strconv.FormatInt(id, 10)
		req := httptest.NewRequest("GET", "/api/responses/"+idStr, nil)
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()

		handler.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var got models.AnswerSet
		testutil.AssertJSON(t, w, &got)
		if want := strconv.Itoa(20 + idx); got["age"] != want {
			t.Errorf("id %d: expected age %s, got %s", id, want, got["age"])
		}
	}
}
