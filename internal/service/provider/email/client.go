package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"
)

const defaultDialTimeout = 10 * time.Second

// Config SMTP 配置，Host 为空表示没有配置邮件服务
type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	FromName string `yaml:"fromName"`
	// 单位毫秒，为 0 时使用默认值
	TimeoutMs int64 `yaml:"timeoutMs"`
}

func (c Config) Configured() bool {
	return c.Host != "" && c.From != ""
}

func (c Config) timeout() time.Duration {
	if c.TimeoutMs <= 0 {
		return defaultDialTimeout
	}
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Message 一封邮件
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Client 邮件发送客户端
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPClient 基于 SMTP 协议发送邮件，465 端口走隐式 TLS，其余端口服务端支持时升级 STARTTLS
type SMTPClient struct {
	cfg  Config
	from mail.Address
	now  func() time.Time
}

func NewSMTPClient(cfg Config) *SMTPClient {
	return &SMTPClient{
		cfg:  cfg,
		from: mail.Address{Name: cfg.FromName, Address: cfg.From},
		now:  time.Now,
	}
}

func (c *SMTPClient) Send(ctx context.Context, msg Message) error {
	body, err := c.compose(msg)
	if err != nil {
		return err
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return fmt.Errorf("连接SMTP服务器失败: %w", err)
	}
	// 整个会话共用一个截止时间
	deadline := time.Now().Add(c.cfg.timeout())
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("创建SMTP会话失败: %w", err)
	}
	defer client.Close()

	if c.cfg.Port != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err = client.StartTLS(&tls.Config{ServerName: c.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
				return fmt.Errorf("STARTTLS失败: %w", err)
			}
		}
	}
	if c.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
			if err = client.Auth(auth); err != nil {
				return fmt.Errorf("SMTP认证失败: %w", err)
			}
		}
	}

	if err = client.Mail(c.from.Address); err != nil {
		return fmt.Errorf("MAIL FROM失败: %w", err)
	}
	if err = client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("RCPT TO失败: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA失败: %w", err)
	}
	if _, err = w.Write(body); err != nil {
		_ = w.Close()
		return fmt.Errorf("写入邮件内容失败: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("提交邮件失败: %w", err)
	}
	return client.Quit()
}

func (c *SMTPClient) dial(ctx context.Context) (net.Conn, error) {
	addr := net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))
	dialer := &net.Dialer{Timeout: c.cfg.timeout()}
	if c.cfg.Port == 465 {
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    &tls.Config{ServerName: c.cfg.Host, MinVersion: tls.VersionTLS12},
		}
		return tlsDialer.DialContext(ctx, "tcp", addr)
	}
	return dialer.DialContext(ctx, "tcp", addr)
}

// compose 生成 multipart/alternative 邮件，纯文本在前，HTML 在后
func (c *SMTPClient) compose(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	headers := []struct{ key, value string }{
		{"From", c.from.String()},
		{"To", (&mail.Address{Address: msg.To}).String()},
		{"Subject", mime.QEncoding.Encode("utf-8", msg.Subject)},
		{"Date", c.now().Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", "multipart/alternative; boundary=" + mw.Boundary()},
	}
	for _, h := range headers {
		buf.WriteString(h.key + ": " + h.value + "\r\n")
	}
	buf.WriteString("\r\n")

	parts := []struct{ contentType, content string }{
		{"text/plain; charset=utf-8", msg.Text},
		{"text/html; charset=utf-8", msg.HTML},
	}
	for _, p := range parts {
		if p.content == "" {
			continue
		}
		pw, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.contentType},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, err
		}
		if _, err = pw.Write([]byte(p.content)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
