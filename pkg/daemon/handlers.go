package daemon

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/battosd/battosd/pkg/version"
)

func getConfig(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, store.Get())
}

func getBattery(c *gin.Context) {
	snap, err := source.Read()
	if err != nil {
		logrus.Errorf("getBattery failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.IndentedJSON(http.StatusOK, snap)
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

// forceCheck runs one poll cycle immediately, without waiting for the
// next timer tick. Returns the decision that was shown, or null when the
// poll produced nothing to show.
func forceCheck(c *gin.Context) {
	d, err := checkOnce()
	if err != nil {
		logrus.Errorf("forced check failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.IndentedJSON(http.StatusOK, d)
}

// getEvents streams notification.shown events as SSE until the client
// disconnects.
func getEvents(c *gin.Context) {
	ch := sseHub.Subscribe()
	defer sseHub.Unsubscribe(ch)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, string(ev.Data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
