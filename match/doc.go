// Package match implements the backward trigger scan that decides whether
// the caret sits inside an in-progress keyword, and the session state
// machine that turns scan results into keyword/finished notifications.
package match
