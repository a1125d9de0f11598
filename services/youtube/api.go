// Package youtube is a thin client for the YouTube Data API v3, covering the
// snippet, localizations, captions and contentDetails surfaces the catalog
// syncs against.
package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/sosodev/duration"
	"github.com/urfave/cli"

	"github.com/bloggermandolin/catalog/services/apperr"
)

const (
	apiKeyFlag        = "youtube-api-key"
	apiHostFlag       = "youtube-api-host"
	apiPortFlag       = "youtube-api-port"
	apiSecureFlag     = "youtube-api-secure"
	clientSecretsFlag = "youtube-client-secrets"
	tokenFileFlag     = "youtube-token-file"
)

// MusicCategoryID is the fixed YouTube category for every synced video.
const MusicCategoryID = "10"

// DefaultLanguage is the main snippet language pushed on every update.
const DefaultLanguage = "ja"

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   apiHostFlag,
			Usage:  "youtube api host",
			EnvVar: "YOUTUBE_API_HOST",
			Value:  "www.googleapis.com",
		},
		cli.IntFlag{
			Name:   apiPortFlag,
			Usage:  "youtube api port",
			EnvVar: "YOUTUBE_API_PORT",
			Value:  443,
		},
		cli.BoolTFlag{
			Name:   apiSecureFlag,
			Usage:  "youtube api secure (https)",
			EnvVar: "YOUTUBE_API_SECURE",
		},
		cli.StringFlag{
			Name:   apiKeyFlag,
			Usage:  "youtube data api key (read-only calls)",
			Value:  "",
			EnvVar: "YOUTUBE_API_KEY",
		},
		cli.StringFlag{
			Name:   clientSecretsFlag,
			Usage:  "oauth2 installed-app client secrets file",
			Value:  "client_secrets.json",
			EnvVar: "YOUTUBE_CLIENT_SECRETS",
		},
		cli.StringFlag{
			Name:   tokenFileFlag,
			Usage:  "oauth2 cached token file",
			Value:  "token.json",
			EnvVar: "YOUTUBE_TOKEN_FILE",
		},
	)
}

type Api struct {
	url         string
	uploadURL   string
	key         string
	secretsFile string
	tokenFile   string
	cl          *http.Client
	authCl      *http.Client
}

func New(c *cli.Context, cl *http.Client) *Api {
	host := c.String(apiHostFlag)
	port := c.Int(apiPortFlag)
	secure := c.BoolT(apiSecureFlag)
	key := c.String(apiKeyFlag)
	secrets := c.String(clientSecretsFlag)
	token := c.String(tokenFileFlag)
	if key == "" && secrets == "" {
		return nil
	}
	protocol := "http"
	if secure {
		protocol = "https"
	}
	u := fmt.Sprintf("%v://%v:%v", protocol, host, port)
	log.Infof("youtube api endpoint %v", u)
	return &Api{
		url:         u + "/youtube/v3",
		uploadURL:   u + "/upload/youtube/v3",
		key:         key,
		secretsFile: secrets,
		tokenFile:   token,
		cl:          cl,
	}
}

// Localization is one entry of the videos.update localizations map.
type Localization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Playback carries the fields YouTube computes and the catalog only reads
// back: duration in seconds and the effective publish time in UTC+8.
type Playback struct {
	Duration    int
	PublishedAt time.Time
}

// localZone is the channel's fixed UTC+8 offset for displayed publish times.
var localZone = time.FixedZone("UTC+8", 8*60*60)

// ExtractVideoID pulls the video id out of a watch or short link. Anything
// that is neither is taken as a bare id.
func ExtractVideoID(link string) string {
	if link == "" {
		return ""
	}
	if strings.Contains(link, "youtu.be") {
		parts := strings.Split(link, "/")
		id := parts[len(parts)-1]
		return strings.SplitN(id, "?", 2)[0]
	}
	if strings.Contains(link, "v=") {
		id := link[strings.LastIndex(link, "v=")+2:]
		return strings.SplitN(id, "&", 2)[0]
	}
	return link
}

// GetSnippet reads the current snippet for a video. The raw map is kept as-is
// so a read-modify-write update never clobbers fields the catalog does not
// manage. Returns nil when the video does not exist.
func (api *Api) GetSnippet(ctx context.Context, videoID string) (map[string]any, error) {
	var out struct {
		Items []struct {
			Snippet map[string]any `json:"snippet"`
		} `json:"items"`
	}
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("id", videoID)
	if err := api.doJSON(ctx, "GET", api.url+"/videos", q, nil, &out); err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	return out.Items[0].Snippet, nil
}

// GetTags reads the tag list of a video. A missing video or a video without
// tags yields a nil slice, not an error.
func (api *Api) GetTags(ctx context.Context, videoID string) ([]string, error) {
	sn, err := api.GetSnippet(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if sn == nil {
		return nil, nil
	}
	raw, _ := sn["tags"].([]any)
	var tags []string
	for _, t := range raw {
		if s, ok := t.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags, nil
}

// UpdateSnippet pushes a full snippet for the video.
func (api *Api) UpdateSnippet(ctx context.Context, videoID string, snippet map[string]any) error {
	q := url.Values{}
	q.Set("part", "snippet")
	body := map[string]any{
		"id":      videoID,
		"snippet": snippet,
	}
	return api.doJSON(ctx, "PUT", api.url+"/videos", q, body, nil)
}

// UpdateLocalizations replaces the per-locale title/description map.
func (api *Api) UpdateLocalizations(ctx context.Context, videoID string, locs map[string]Localization) error {
	q := url.Values{}
	q.Set("part", "localizations")
	body := map[string]any{
		"id":            videoID,
		"localizations": locs,
	}
	return api.doJSON(ctx, "PUT", api.url+"/videos", q, body, nil)
}

// UpdateTags appends the comma-separated tags to the video's current tag list,
// re-reading the snippet first so unmanaged fields survive.
func (api *Api) UpdateTags(ctx context.Context, videoID string, tagString string) error {
	sn, err := api.GetSnippet(ctx, videoID)
	if err != nil {
		return err
	}
	if sn == nil {
		return apperr.Newf(apperr.RemoteService, "video %s not found on youtube", videoID)
	}
	existing, _ := sn["tags"].([]any)
	for _, t := range strings.Split(tagString, ",") {
		if t = strings.TrimSpace(t); t != "" {
			existing = append(existing, t)
		}
	}
	sn["tags"] = existing
	return api.UpdateSnippet(ctx, videoID, sn)
}

// InsertCaption uploads one subtitle track as a non-draft caption.
func (api *Api) InsertCaption(ctx context.Context, videoID string, lang string, name string, body io.Reader) error {
	meta := map[string]any{
		"snippet": map[string]any{
			"videoId":  videoID,
			"name":     name,
			"language": lang,
			"isDraft":  false,
		},
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "marshal caption metadata")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	mh := textproto.MIMEHeader{}
	mh.Set("Content-Type", "application/json; charset=UTF-8")
	part, err := w.CreatePart(mh)
	if err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "create caption metadata part")
	}
	if _, err = part.Write(metaJSON); err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "write caption metadata part")
	}
	mh = textproto.MIMEHeader{}
	mh.Set("Content-Type", "application/octet-stream")
	part, err = w.CreatePart(mh)
	if err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "create caption media part")
	}
	if _, err = io.Copy(part, body); err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "write caption media part")
	}
	if err = w.Close(); err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "close caption body")
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("uploadType", "multipart")
	req, err := http.NewRequestWithContext(ctx, "POST", api.uploadURL+"/captions?"+q.Encode(), &buf)
	if err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "create caption request")
	}
	req.Header.Set("Content-Type", "multipart/related; boundary="+w.Boundary())
	resp, err := api.client().Do(req)
	if err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "insert caption")
	}
	defer func(b io.ReadCloser) {
		_ = b.Close()
	}(resp.Body)
	if resp.StatusCode >= 400 {
		return remoteStatusError(resp)
	}
	return nil
}

// GetPlayback reads the YouTube-computed duration and effective publish time.
// A scheduled publish time wins over the first-published timestamp; the result
// is converted to the channel's fixed UTC+8 offset.
func (api *Api) GetPlayback(ctx context.Context, videoID string) (*Playback, error) {
	var out struct {
		Items []struct {
			ContentDetails struct {
				Duration string `json:"duration"`
			} `json:"contentDetails"`
			Snippet struct {
				PublishedAt string `json:"publishedAt"`
			} `json:"snippet"`
			Status struct {
				PublishAt string `json:"publishAt"`
			} `json:"status"`
		} `json:"items"`
	}
	q := url.Values{}
	q.Set("part", "contentDetails,snippet,status")
	q.Set("id", videoID)
	if err := api.doJSON(ctx, "GET", api.url+"/videos", q, nil, &out); err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, apperr.Newf(apperr.RemoteService, "video %s not found on youtube", videoID)
	}
	item := out.Items[0]

	d, err := duration.Parse(item.ContentDetails.Duration)
	if err != nil {
		return nil, apperr.Wrap(apperr.RemoteService, err, "parse video duration")
	}

	published := item.Status.PublishAt
	if published == "" {
		published = item.Snippet.PublishedAt
	}
	ts, err := time.Parse(time.RFC3339, published)
	if err != nil {
		return nil, apperr.Wrap(apperr.RemoteService, err, "parse publish time")
	}

	return &Playback{
		Duration:    int(d.ToTimeDuration() / time.Second),
		PublishedAt: ts.In(localZone),
	}, nil
}

func (api *Api) client() *http.Client {
	if api.authCl != nil {
		return api.authCl
	}
	return api.cl
}

func (api *Api) doJSON(ctx context.Context, method, reqURL string, q url.Values, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return apperr.Wrap(apperr.RemoteService, err, "marshal request body")
		}
		rd = bytes.NewReader(b)
	}
	if api.key != "" && api.authCl == nil {
		q.Set("key", api.key)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL+"?"+q.Encode(), rd)
	if err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}
	resp, err := api.client().Do(req)
	if err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "request failed")
	}
	defer func(b io.ReadCloser) {
		_ = b.Close()
	}(resp.Body)
	if resp.StatusCode >= 400 {
		return remoteStatusError(resp)
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "decode response")
	}
	return nil
}

func remoteStatusError(resp *http.Response) error {
	var e struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error.Message != "" {
		return apperr.Newf(apperr.RemoteService, "youtube api: %s (%d)", e.Error.Message, e.Error.Code)
	}
	return apperr.Wrap(apperr.RemoteService, errors.Errorf("status %v", resp.Status), "youtube api")
}
