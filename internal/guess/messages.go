package guess

import "fmt"

// Messages shown in the output area.
const (
	MsgWelcome = "Je pense à un nombre entre 1 et 20. Devine-le !"
	MsgRestart = "Je pense à un nouveau nombre entre 1 et 20. À toi de jouer !"
	MsgInvalid = "Erreur : entre un nombre valide entre 1 et 20 !"
)

func msgTooLow(guess int) string {
	return fmt.Sprintf("C'est %d. Trop bas. Essaie encore !", guess)
}

func msgTooHigh(guess int) string {
	return fmt.Sprintf("C'est %d. Trop haut. Essaie encore !", guess)
}

func msgWin(secret, attempts int) string {
	return fmt.Sprintf("🥳 Bravo, bâtisseur du digital ! Tu as trouvé le nombre secret (%d) en %d essais.", secret, attempts)
}
