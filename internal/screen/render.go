package screen

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"linkfatec/internal/models"
	"linkfatec/internal/viewmodel"
)

const (
	ToastSuccess = "Enviado com sucesso"
	ToastError   = "Ocorreu algum erro ao enviar as informações"
)

func Toast(ev viewmodel.UiEvent) string {
	if ev == viewmodel.UiEventSuccess {
		return ToastSuccess
	}
	return ToastError
}

// FlushToasts prints every event already queued on events.
func FlushToasts(w io.Writer, events *viewmodel.Events) {
	for {
		select {
		case ev := <-events.C():
			fmt.Fprintf(w, "* %s\n", Toast(ev))
		default:
			return
		}
	}
}

// PrintToasts prints events as they arrive until ctx is done.
func PrintToasts(ctx context.Context, w io.Writer, events *viewmodel.Events) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events.C():
			fmt.Fprintf(w, "* %s\n", Toast(ev))
		}
	}
}

func RenderOpportunities(w io.Writer, s viewmodel.OpportunitiesState) {
	switch {
	case s.Loading:
		fmt.Fprintln(w, "Carregando vagas...")
	case s.Error:
		fmt.Fprintln(w, "Não foi possível carregar as vagas.")
	case len(s.Posts) == 0:
		fmt.Fprintln(w, "Nenhuma vaga disponível.")
	default:
		renderPosts(w, s.Posts)
	}
}

func RenderAppliedOffers(w io.Writer, s viewmodel.AppliedOffersState) {
	switch {
	case s.Loading:
		fmt.Fprintln(w, "Carregando candidaturas...")
		return
	case s.Error:
		fmt.Fprintln(w, "Não foi possível carregar as candidaturas.")
	case s.Refreshing:
		fmt.Fprintln(w, "Atualizando...")
	}
	if s.Loaded && len(s.Posts) == 0 {
		fmt.Fprintln(w, "Você ainda não se candidatou a nenhuma vaga.")
		return
	}
	renderPosts(w, s.Posts)
}

func RenderNotifications(w io.Writer, s viewmodel.NotificationsState) {
	switch {
	case s.Loading:
		fmt.Fprintln(w, "Carregando notificações...")
	case s.Error:
		fmt.Fprintln(w, "Não foi possível carregar as notificações.")
	case len(s.Notifications) == 0:
		fmt.Fprintln(w, "Nenhuma notificação.")
	default:
		for _, n := range s.Notifications {
			RenderNotification(w, n)
		}
	}
}

func RenderNotification(w io.Writer, n models.Notification) {
	marker := "•"
	if n.Read {
		marker = " "
	}
	fmt.Fprintf(w, "%s [%d] %s: %s\n", marker, n.ID, n.Title, n.Message)
}

func RenderProfile(w io.Writer, s viewmodel.ProfileState) {
	if s.LoggedOut || s.User.ID == 0 {
		fmt.Fprintln(w, "Nenhum usuário conectado.")
		return
	}
	fmt.Fprintf(w, "%s (#%d)\n", s.User.Name, s.User.ID)
	fmt.Fprintf(w, "Curso: %s\n", s.User.Course.Name)
	if s.User.ProfilePicture != nil {
		fmt.Fprintf(w, "Foto: %s\n", *s.User.ProfilePicture)
	}
}

func RenderLogin(w io.Writer, s viewmodel.LoginScreenState) {
	switch s.Login.Status {
	case models.LoggedIn:
		name := ""
		if s.Login.User != nil {
			name = s.Login.User.Name
		}
		fmt.Fprintf(w, "Bem-vindo, %s!\n", name)
	case models.InvalidCredentials:
		fmt.Fprintln(w, "E-mail ou senha inválidos.")
	case models.LoginError:
		fmt.Fprintln(w, "Não foi possível entrar. Tente novamente.")
	default:
		fmt.Fprintln(w, "Você não está conectado.")
	}
}

func renderPosts(w io.Writer, posts []models.Post) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMPRESA\tVAGA\tCURTIDAS\tINSCRITOS\tPUBLICADA")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.CompanyName, postTitle(p),
			flagged(p.LikeCount, p.Liked), flagged(p.AppliedStudentsCount, p.Subscribed),
			postDate(p.CreatedAt))
	}
	tw.Flush()
}

func postTitle(p models.Post) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{p.Title, p.Role} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " / ")
}

// flagged marks counters the viewer contributed to.
func flagged(count int, mine bool) string {
	if mine {
		return fmt.Sprintf("%d*", count)
	}
	return fmt.Sprint(count)
}

func postDate(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format("02/01/2006")
}
