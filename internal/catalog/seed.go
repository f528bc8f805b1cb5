package catalog

// Seed data for the Nauta Treinamentos catalog. Two courses carry a full
// syllabus and are playable end to end; the rest are listing-only entries.

func seedQuizzes() []QuizDefinition {
	return []QuizDefinition{
		{
			ID:    "quiz1_cbsp_mod1",
			Title: "Quiz: Introdução à Segurança Offshore",
			Questions: []Question{
				{
					ID:   "q1",
					Text: "Qual o principal objetivo das normas de segurança offshore?",
					Options: []Option{
						{ID: "opt1", Text: "Aumentar a produção"},
						{ID: "opt2", Text: "Prevenir acidentes e proteger vidas"},
						{ID: "opt3", Text: "Reduzir custos operacionais"},
					},
					CorrectOptionID: "opt2",
					Explanation:     "As normas de segurança offshore são primariamente focadas na prevenção de acidentes e na proteção da saúde e vida dos trabalhadores.",
				},
				{
					ID:   "q2",
					Text: "O que significa a sigla CBSP?",
					Options: []Option{
						{ID: "opt1", Text: "Curso Básico de Segurança em Plataforma"},
						{ID: "opt2", Text: "Controle Básico de Situações Perigosas"},
						{ID: "opt3", Text: "Comitê Brasileiro de Segurança Petrolífera"},
					},
					CorrectOptionID: "opt1",
					Explanation:     "CBSP significa Curso Básico de Segurança em Plataforma, essencial para quem trabalha embarcado.",
				},
			},
			PassingScore: 70,
			MaxAttempts:  3,
		},
		{
			ID:    "finalQuiz_cbsp",
			Title: "Prova Final: Segurança Offshore Essencial (CBSP)",
			Questions: []Question{
				{
					ID:   "fq1",
					Text: "Em caso de incêndio a bordo, qual a primeira ação a ser tomada após identificar o fogo?",
					Options: []Option{
						{ID: "opt1", Text: "Tentar apagar o fogo sozinho imediatamente."},
						{ID: "opt2", Text: "Acionar o alarme de incêndio e avisar a equipe de emergência."},
						{ID: "opt3", Text: "Pular na água."},
					},
					CorrectOptionID: "opt2",
					Explanation:     "A prioridade é alertar a todos e acionar a equipe especializada. Tentar apagar sozinho pode ser perigoso sem o devido preparo e equipamento.",
				},
				{
					ID:   "fq2",
					Text: "Qual equipamento de proteção individual (EPI) é fundamental para trabalhos em altura?",
					Options: []Option{
						{ID: "opt1", Text: "Luvas de raspa."},
						{ID: "opt2", Text: "Protetor auricular."},
						{ID: "opt3", Text: "Cinto de segurança tipo paraquedista com talabarte."},
					},
					CorrectOptionID: "opt3",
					Explanation:     "O cinto de segurança tipo paraquedista é essencial para prevenir quedas em trabalhos em altura.",
				},
				{
					ID:   "fq3",
					Text: "O que é um 'ponto de encontro' (muster station) em uma plataforma?",
					Options: []Option{
						{ID: "opt1", Text: "Área de lazer dos funcionários."},
						{ID: "opt2", Text: "Local designado para reunião em caso de emergência."},
						{ID: "opt3", Text: "Sala de controle principal da plataforma."},
					},
					CorrectOptionID: "opt2",
					Explanation:     "O ponto de encontro é um local seguro para onde todos devem se dirigir durante uma emergência para contagem e instruções.",
				},
			},
			PassingScore: 70,
			MaxAttempts:  3,
		},
		{
			ID:    "finalQuiz_nr05",
			Title: "Prova Final: NR-05 CIPA",
			Questions: []Question{
				{
					ID:   "nr05_q1",
					Text: "Qual o principal objetivo da CIPA (Comissão Interna de Prevenção de Acidentes)?",
					Options: []Option{
						{ID: "opt1", Text: "Organizar festas de confraternização na empresa."},
						{ID: "opt2", Text: "A prevenção de acidentes e doenças decorrentes do trabalho."},
						{ID: "opt3", Text: "Fiscalizar o ponto dos funcionários."},
					},
					CorrectOptionID: "opt2",
					Explanation:     "O objetivo fundamental da CIPA é tornar compatível permanentemente o trabalho com a preservação da vida e a promoção da saúde do trabalhador.",
				},
				{
					ID:   "nr05_q2",
					Text: "Quem compõe a CIPA?",
					Options: []Option{
						{ID: "opt1", Text: "Apenas representantes indicados pelo empregador."},
						{ID: "opt2", Text: "Apenas representantes eleitos pelos empregados."},
						{ID: "opt3", Text: "Representantes do empregador e dos empregados, de forma paritária."},
					},
					CorrectOptionID: "opt3",
					Explanation:     "A CIPA é composta por representantes do empregador (designados) e dos empregados (eleitos).",
				},
				{
					ID:   "nr05_q3",
					Text: "O que é o Mapa de Riscos?",
					Options: []Option{
						{ID: "opt1", Text: "Um mapa rodoviário para chegar à empresa."},
						{ID: "opt2", Text: "Uma representação gráfica dos riscos existentes nos locais de trabalho."},
						{ID: "opt3", Text: "Um cardápio de refeições saudáveis para os trabalhadores."},
					},
					CorrectOptionID: "opt2",
					Explanation:     "O Mapa de Riscos é uma ferramenta visual importante para identificar e conscientizar sobre os perigos no ambiente de trabalho.",
				},
			},
			PassingScore: 70,
			MaxAttempts:  3,
		},
	}
}

func seedCourses() []CourseDefinition {
	return []CourseDefinition{
		{
			ID:               "1",
			Slug:             "seguranca-offshore-basico",
			Name:             "Segurança Offshore Essencial (CBSP)",
			Category:         "Iniciação",
			ShortDescription: "Domine os fundamentos de segurança para atuação em plataformas.",
			Price:            "R$ 960,00",
			Duration:         "40 horas",
			Sections: []Section{
				{
					ID:    "s1_cbsp",
					Title: "Módulo 1: Introdução e Conceitos Fundamentais",
					Lessons: []Lesson{
						{ID: "l1_cbsp_mod1_aula1", Title: "Bem-vindo ao Curso!", Kind: KindVideo, Duration: "5 min"},
						{
							ID:    "l1_cbsp_mod1_aula2",
							Title: "Panorama da Indústria Offshore",
							Kind:  KindText,
							Content: "A indústria offshore abrange a exploração e produção de petróleo e gás em alto mar. " +
								"Envolve plataformas fixas, flutuantes, navios especializados e uma complexa cadeia logística. " +
								"Os principais desafios incluem condições ambientais severas, isolamento e a necessidade de rigorosos padrões de segurança.",
						},
						{ID: "l1_cbsp_mod1_aula3", Title: "Principais Riscos e Perigos", Kind: KindVideo, Duration: "15 min"},
						{ID: "l1_cbsp_mod1_aula4", Title: "Quiz Rápido: Módulo 1", Kind: KindQuiz, QuizID: "quiz1_cbsp_mod1"},
					},
				},
				{
					ID:    "s2_cbsp",
					Title: "Módulo 2: Sobrevivência no Mar",
					Lessons: []Lesson{
						{ID: "l2_cbsp_mod2_aula1", Title: "Técnicas de Abandono de Plataforma", Kind: KindVideo, Duration: "20 min"},
						{
							ID:    "l2_cbsp_mod2_aula2",
							Title: "Uso de Balsas Salva-Vidas",
							Kind:  KindText,
							Content: "As balsas salva-vidas são equipamentos essenciais. Aprenda sobre os tipos, capacidade, " +
								"como lançá-las e os procedimentos de embarque em emergências. Conheça os suprimentos contidos nelas.",
						},
						{ID: "l2_cbsp_mod2_aula3", Title: "Hipotermia e Primeiros Socorros", Kind: KindVideo, Duration: "18 min"},
					},
				},
				{
					ID:    "s3_cbsp_final",
					Title: "Avaliação Final do Curso",
					Lessons: []Lesson{
						{ID: "l3_cbsp_final_quiz", Title: "Prova Final CBSP", Kind: KindQuiz, QuizID: "finalQuiz_cbsp"},
					},
				},
			},
			FinalQuizID: "finalQuiz_cbsp",
		},
		{
			ID:               "7",
			Slug:             "nr05-cipa-comissao-interna",
			Name:             "NR-05 CIPA - Comissão Interna de Prevenção de Acidentes",
			Category:         "Segurança",
			ShortDescription: "Capacitação completa sobre a CIPA, suas atribuições e importância na segurança do trabalho.",
			Price:            "R$ 450,00",
			Duration:         "20 horas",
			Sections: []Section{
				{
					ID:    "s1_nr05",
					Title: "Módulo 1: Introdução à CIPA e Legislação",
					Lessons: []Lesson{
						{ID: "l1_nr05_aula1", Title: "O que é a CIPA?", Kind: KindVideo, Duration: "10 min"},
						{
							ID:    "l1_nr05_aula2",
							Title: "Objetivos e Importância da CIPA",
							Kind:  KindText,
							Content: "A CIPA tem como objetivo a prevenção de acidentes e doenças decorrentes do trabalho, " +
								"de modo a tornar compatível permanentemente o trabalho com a preservação da vida e a promoção " +
								"da saúde do trabalhador. Sua importância reside no papel ativo dos trabalhadores na identificação e controle dos riscos.",
						},
						{ID: "l1_nr05_aula3", Title: "Aspectos Legais da NR-05", Kind: KindVideo, Duration: "15 min"},
					},
				},
				{
					ID:    "s2_nr05",
					Title: "Módulo 2: Organização e Atribuições da CIPA",
					Lessons: []Lesson{
						{
							ID:    "l2_nr05_aula1",
							Title: "Composição e Dimensionamento",
							Kind:  KindText,
							Content: "A CIPA é composta por representantes do empregador e dos empregados. O dimensionamento " +
								"varia conforme o número de empregados e o grau de risco da atividade da empresa, conforme Quadro I da NR-05.",
						},
						{ID: "l2_nr05_aula2", Title: "Processo Eleitoral da CIPA", Kind: KindVideo, Duration: "20 min"},
						{
							ID:      "l2_nr05_aula3",
							Title:   "Atribuições dos Membros da CIPA",
							Kind:    KindText,
							Content: "Identificar riscos, elaborar plano de trabalho, participar da implementação de medidas preventivas, divulgar informações de segurança, entre outras.",
						},
					},
				},
				{
					ID:    "s3_nr05",
					Title: "Módulo 3: Ferramentas e Práticas da CIPA",
					Lessons: []Lesson{
						{ID: "l3_nr05_aula1", Title: "Elaboração do Mapa de Riscos", Kind: KindVideo, Duration: "25 min"},
						{
							ID:      "l3_nr05_aula2",
							Title:   "Inspeções de Segurança",
							Kind:    KindText,
							Content: "As inspeções de segurança são vistorias periódicas nos locais de trabalho para identificar condições de risco e propor correções.",
						},
						{ID: "l3_nr05_aula3", Title: "Investigação de Acidentes", Kind: KindVideo, Duration: "15 min"},
					},
				},
				{
					ID:    "s4_nr05_final",
					Title: "Avaliação Final do Curso NR-05",
					Lessons: []Lesson{
						{ID: "l4_nr05_final_quiz", Title: "Prova Final NR-05 CIPA", Kind: KindQuiz, QuizID: "finalQuiz_nr05"},
					},
				},
			},
			FinalQuizID: "finalQuiz_nr05",
		},
		{
			ID:               "2",
			Slug:             "gestao-riscos-offshore",
			Name:             "Gestão de Riscos em Operações Offshore",
			Category:         "Avançado",
			ShortDescription: "Aprenda a identificar, analisar e mitigar riscos em projetos offshore.",
			Price:            "R$ 2.500,00",
			Duration:         "60 horas",
		},
		{
			ID:               "3",
			Slug:             "mergulho-raso-profissional",
			Name:             "Mergulho Raso Profissional",
			Category:         "Intermediário",
			ShortDescription: "Formação completa para atividades de mergulho em águas rasas.",
			Price:            "R$ 3.500,00",
			Duration:         "120 horas",
		},
		{
			ID:               "4",
			Slug:             "operador-guindaste-offshore",
			Name:             "Operador de Guindaste Offshore",
			Category:         "Intermediário",
			ShortDescription: "Capacitação para operação segura e eficiente de guindastes em plataformas.",
			Price:            "R$ 2.200,00",
			Duration:         "80 horas",
		},
		{
			ID:               "5",
			Slug:             "nr35-trabalho-altura",
			Name:             "NR-35 Trabalho em Altura Offshore",
			Category:         "Segurança",
			ShortDescription: "Treinamento essencial para trabalhos seguros em altura no ambiente offshore.",
			Price:            "R$ 750,00",
			Duration:         "16 horas",
		},
		{
			ID:               "6",
			Slug:             "ingles-tecnico-offshore",
			Name:             "Inglês Técnico para Profissionais Offshore",
			Category:         "Complementar",
			ShortDescription: "Desenvolva o vocabulário técnico em inglês essencial para o setor.",
			Price:            "R$ 1.100,00",
			Duration:         "50 horas",
		},
	}
}
