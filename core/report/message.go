// ABOUTME: Slack Block Kit payload types for report notifications
// ABOUTME: Only the block shapes the report message uses are modelled

package report

import (
	"fmt"

	"pricewatch-api/core/domain"
)

const reportHeader = "🚨 최저가 리포트"

type slackMessage struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func mrkdwn(text string) slackText {
	return slackText{Type: "mrkdwn", Text: text}
}

// buildMessage lays out the header, the four detail fields and the link section
func (s *ReportService) buildMessage(r *domain.Report, reportedAt string) slackMessage {
	return slackMessage{
		Blocks: []slackBlock{
			{
				Type: "header",
				Text: &slackText{Type: "plain_text", Text: reportHeader},
			},
			{
				Type: "section",
				Fields: []slackText{
					mrkdwn(fmt.Sprintf("*상품명:*\n%s", r.Name)),
					mrkdwn(fmt.Sprintf("*쇼핑몰:*\n%s", r.Mall)),
					mrkdwn(fmt.Sprintf("*가격:*\n%s", s.FormatPrice(r.Price))),
					mrkdwn(fmt.Sprintf("*리포팅 일시:*\n%s", reportedAt)),
				},
			},
			{
				Type: "section",
				Text: &slackText{Type: "mrkdwn", Text: fmt.Sprintf("*상품 URL:*\n<%s|상품 페이지 바로가기>", r.Link)},
			},
		},
	}
}
