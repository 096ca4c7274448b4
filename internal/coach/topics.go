package coach

var primaryTopics = []Topic{
	{
		Name:     "whey",
		Keywords: []string{"whey", "proteína", "proteina"},
		Answer:   "**Sobre Whey Protein:**\nÉ um dos suplementos mais estudados e seguros. Normalmente recomenda-se 25-30g após o treino ou para completar a meta diária de proteína. Para seu perfil, 1-2 doses diárias costumam ser suficientes. Evite tomar muito próximo às refeições principais. Marcas bem avaliadas incluem: Growth, Optimum, Max Titanium.",
	},
	{
		Name:     "creatina",
		Keywords: []string{"creatina"},
		Answer:   "**Sobre Creatina:**\nÉ o suplemento com mais evidência científica para ganho de força e massa muscular. Dose: 3-5g diários, qualquer horário. Não precisa fazer saturação. Tome com água ou carboidrato simples. Pode causar leve retenção hídrica (normal). Beba mais água durante o uso. É segura para uso contínuo.",
	},
	{
		Name:     "hormonios",
		Keywords: []string{"testosterona", "hormônio", "hormonio"},
		Answer:   "**Sobre Hormônios:**\nHormônios devem ser prescritos apenas por médico endocrinologista após exames detalhados. Nunca se automedique. Alternativas naturais: sono adequado (7-9h), exercícios compostos, dieta rica em zinco e vitamina D, redução do estresse. Se suspeita de baixa testosterona, procure um médico para avaliação completa.",
	},
	{
		Name:     "bcaa",
		Keywords: []string{"bcaa", "aminoácido", "aminoacido"},
		Answer:   "**Sobre BCAA:**\nPode ser útil se você treina em jejum ou tem baixo consumo de proteína. Se já consome whey protein e carnes, o benefício é limitado. Dose: 10-15g antes/durante treino em jejum. Para seu perfil atual, priorizaria whey protein que já contém todos os aminoácidos essenciais.",
	},
	{
		Name:     "pre-treino",
		Keywords: []string{"pré-treino", "pre treino", "cafeína", "cafeina"},
		Answer:   "**Sobre Pré-treino:**\nPode aumentar performance e foco. Ingredientes-chave: cafeína (200-400mg), beta-alanina, citrulina. Comece com dose menor para avaliar tolerância. Evite após 16h para não atrapalhar o sono. Alternativa natural: café forte (1-2 xícaras) 30min antes do treino.",
	},
	{
		Name:     "termogenicos",
		Keywords: []string{"gordura", "termogênico", "termogenico"},
		Answer:   "**Sobre Termogênicos:**\nPodem ajudar, mas não são mágicos. Cafeína é o mais eficaz. Priorize déficit calórico através da dieta e exercícios. Efeitos colaterais possíveis: ansiedade, insônia, taquicardia. Se usar, comece devagar e evite próximo ao sono. Mais importante: consistência na dieta e treino.",
	},
	{
		Name:     "vitaminas",
		Keywords: []string{"vitamina", "multivitamínico", "multivitaminico"},
		Answer:   "**Sobre Vitaminas:**\nMultivitamínico pode ser útil se há deficiências na dieta. Priorize: Vitamina D (2000-4000 UI), Ômega-3 (1-2g), Magnésio (300-400mg). Faça exames anuais para verificar níveis. Uma dieta variada com frutas, vegetais e proteínas geralmente supre a maioria das necessidades.",
	},
	{
		Name:     "treino",
		Keywords: []string{"treino", "exercício", "exercicio", "musculação"},
		Answer:   "**Sobre Treino:**\nConsistência é fundamental. Progressão gradual de carga/volume. Priorize exercícios compostos (agachamento, deadlift, supino). Descanso de 48-72h entre treinos do mesmo grupo muscular. Foco na técnica antes da carga. 3-5x por semana é ideal para maioria das pessoas.",
	},
	{
		Name:     "alimentacao",
		Keywords: []string{"dieta", "alimentação", "alimentacao", "emagrecimento"},
		Answer:   "**Sobre Alimentação:**\nBalanço calórico é o principal fator. Para emagrecer: déficit calórico. Para ganhar massa: superávit calórico. Priorize proteínas (1.6-2.2g/kg), carboidratos complexos, gorduras boas. Hidratação adequada. Refeições regulares. Flexibilidade mental é importante para sustentabilidade.",
	},
	{
		Name:     "sono",
		Keywords: []string{"sono", "recuperação", "recuperacao", "descanso"},
		Answer:   "**Sobre Sono e Recuperação:**\n7-9h de sono por noite são fundamentais. Qualidade do sono afeta hormônios, recuperação muscular e performance. Evite telas 1h antes de dormir. Ambiente escuro e fresco. Rotina consistente de sono. Recuperação ativa pode incluir caminhadas leves.",
	},
	{
		Name:     "hidratacao",
		Keywords: []string{"água", "hidratação", "hidratacao"},
		Answer:   "**Sobre Hidratação:**\n35-40ml por kg de peso corporal por dia. Aumente durante treinos e dias quentes. Urina clara indica boa hidratação. Distribua o consumo ao longo do dia. Água é suficiente para treinos até 1h. Para exercícios mais longos, considere isotônicos.",
	},
	{
		Name:     "anabolizantes",
		Keywords: []string{"oxandrolona", "stanozolol", "anabolizante", "esteroide"},
		Answer:   "**Sobre Anabolizantes/Esteroides:**\nOxandrolona e Stanozolol são esteroides anabolizantes controlados. Ambos têm efeitos colaterais graves: problemas hepáticos, cardiovasculares, hormonais. Stanozolol é mais hepatotóxico. Oxandrolona considerada \"mais leve\" mas ainda perigosa. USO ILEGAL sem prescrição médica. Alternativas naturais: treino intenso, dieta adequada, descanso, creatina, whey protein.",
	},
	{
		Name:     "ciclos",
		Keywords: []string{"ciclo", "tpc", "post-ciclo"},
		Answer:   "**Sobre Ciclos e TPC:**\nCiclos de esteroides requerem acompanhamento médico rigoroso. TPC (Terapia Pós-Ciclo) é fundamental para recuperar produção hormonal natural. Sem supervisão médica, riscos incluem: infertilidade, ginecomastia, depressão, problemas cardiovasculares. Priorize métodos naturais: treino consistente, alimentação balanceada, suplementação básica (creatina, whey).",
	},
	{
		Name:     "gh",
		Keywords: []string{"gh", "hormônio do crescimento", "hormonio do crescimento"},
		Answer:   "**Sobre Hormônio do Crescimento (GH):**\nUso apenas com prescrição médica para deficiências comprovadas. Efeitos colaterais: diabetes, problemas articulares, crescimento excessivo de órgãos. Para otimizar GH natural: sono adequado (7-9h), exercícios intensos, jejum intermitente, redução do açúcar. Suplementos naturais: arginina, glicina, GABA podem ajudar marginalmente.",
	},
}

// compoundTopics cover named compounds the primary table does not.
var compoundTopics = []Topic{
	{
		Name:     "glutamina",
		Keywords: []string{"glutamina"},
		Answer:   "**Sobre Glutamina:**\nO corpo produz glutamina em quantidade suficiente na maioria dos casos. Estudos em praticantes saudáveis mostram pouco efeito sobre ganho de massa ou recuperação. Pode ter papel na saúde intestinal em situações específicas. Dose usual em pesquisas: 5-10g/dia. Não é prioridade se a ingestão de proteína já está adequada.",
	},
	{
		Name:     "omega-3",
		Keywords: []string{"ômega", "omega", "óleo de peixe", "oleo de peixe"},
		Answer:   "**Sobre Ômega-3:**\nEPA e DHA têm boa evidência para saúde cardiovascular e controle de inflamação. Dose estudada: 1-3g de EPA+DHA por dia. Prefira produtos com selo de pureza (metais pesados). Consumir peixes gordurosos 2x por semana é uma alternativa alimentar.",
	},
	{
		Name:     "colageno",
		Keywords: []string{"colágeno", "colageno"},
		Answer:   "**Sobre Colágeno:**\nO colágeno hidrolisado pode contribuir para saúde de pele e articulações, com evidência moderada. Dose em estudos: 10g/dia. Tem perfil de aminoácidos incompleto, então não substitui whey ou outras proteínas para ganho de massa.",
	},
	{
		Name:     "melatonina",
		Keywords: []string{"melatonina"},
		Answer:   "**Sobre Melatonina:**\nRegula o ciclo sono-vigília e é mais útil para jet lag ou atraso de fase do sono. Doses baixas (0,5-3mg) 30-60min antes de dormir costumam ser suficientes. Não resolve insônia causada por maus hábitos. Converse com um médico antes de uso contínuo.",
	},
	{
		Name:     "beta-alanina",
		Keywords: []string{"beta-alanina", "beta alanina", "betaalanina"},
		Answer:   "**Sobre Beta-alanina:**\nAumenta a carnosina muscular e pode melhorar desempenho em esforços de 1-4 minutos. Dose: 3,2-6,4g/dia, divididas, por algumas semanas. O formigamento (parestesia) é comum e inofensivo.",
	},
	{
		Name:     "citrulina",
		Keywords: []string{"citrulina", "arginina", "óxido nítrico", "oxido nitrico"},
		Answer:   "**Sobre Citrulina e Óxido Nítrico:**\nA citrulina malato (6-8g antes do treino) tem evidência modesta para reduzir fadiga e aumentar repetições. A arginina oral é pouco absorvida e tem efeito inferior. O \"pump\" percebido não se traduz necessariamente em mais ganho muscular.",
	},
	{
		Name:     "zma",
		Keywords: []string{"zma", "zinco", "magnésio", "magnesio"},
		Answer:   "**Sobre ZMA (Zinco e Magnésio):**\nSó traz benefício claro quando há deficiência desses minerais. Não há evidência consistente de aumento de testosterona em pessoas com níveis normais. Uma dieta com carnes, sementes, castanhas e vegetais verdes costuma suprir a necessidade.",
	},
	{
		Name:     "ashwagandha",
		Keywords: []string{"ashwagandha"},
		Answer:   "**Sobre Ashwagandha:**\nAdaptógeno com estudos indicando redução de estresse e cortisol, e pequenas melhoras de força. Doses em pesquisas: 300-600mg/dia de extrato padronizado. Pode interagir com medicamentos para tireoide e ansiolíticos; consulte um médico.",
	},
	{
		Name:     "tribulus",
		Keywords: []string{"tribulus", "maca peruana"},
		Answer:   "**Sobre Tribulus e Maca Peruana:**\nApesar do marketing, estudos em humanos não mostram aumento significativo de testosterona ou massa muscular. Podem ter efeito sobre libido relatada. Não são substitutos para sono, treino e alimentação adequados.",
	},
	{
		Name:     "clembuterol",
		Keywords: []string{"clembuterol", "efedrina", "dnp"},
		Answer:   "**Sobre Clembuterol, Efedrina e DNP:**\nSão substâncias com risco cardiovascular sério: arritmia, taquicardia, hipertermia. O DNP já causou mortes mesmo em doses consideradas baixas. Não têm uso seguro para emagrecimento sem supervisão médica. O caminho seguro é déficit calórico moderado e treino consistente.",
	},
	{
		Name:     "trembolona",
		Keywords: []string{"trembolona", "nandrolona", "deca", "durateston", "boldenona"},
		Answer:   "**Sobre Trembolona, Nandrolona e outros injetáveis:**\nSão esteroides anabolizantes de uso controlado. Riscos documentados: alterações de colesterol, hipertrofia cardíaca, supressão do eixo hormonal, alterações de humor e infertilidade. Uso sem prescrição é ilegal. Qualquer decisão sobre hormônios deve ser feita com endocrinologista.",
	},
	{
		Name:     "sarms",
		Keywords: []string{"sarm", "ostarina", "ligandrol", "rad-140", "rad140"},
		Answer:   "**Sobre SARMs:**\nSão compostos experimentais sem aprovação para uso humano no Brasil. Suprimem a produção natural de testosterona e podem causar toxicidade hepática. Produtos vendidos como SARMs frequentemente têm rótulo incorreto. Não há uso seguro documentado fora de pesquisas clínicas.",
	},
	{
		Name:     "cafe-verde",
		Keywords: []string{"café verde", "cafe verde", "chá verde", "cha verde", "l-carnitina", "carnitina"},
		Answer:   "**Sobre Chá Verde, Café Verde e L-Carnitina:**\nO efeito sobre perda de gordura é pequeno e depende principalmente da cafeína. A L-carnitina só mostra benefício em casos de deficiência. Investimento melhor: organizar a dieta e aumentar o gasto diário com caminhadas.",
	},
}
